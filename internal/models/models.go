// Package models defines the wire types exchanged with the SoundClub backend.
// Field tags follow the backend's JSON naming (snake_case).
package models

import "encoding/json"

// Profile is the authenticated user as returned by /login/ and the
// profile-mutating endpoints.
type Profile struct {
	ID         int64  `json:"id"`
	Username   string `json:"username"`
	Email      string `json:"email"`
	Bio        string `json:"bio"`
	Gender     string `json:"gender,omitempty"`
	Avatar     string `json:"avatar,omitempty"`
	DateJoined string `json:"date_joined"`
}

// Author is the embedded post/reply author summary.
type Author struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar,omitempty"`
}

type Tag struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Image is a forum image uploaded ahead of post creation.
type Image struct {
	ID   int64  `json:"id"`
	File string `json:"file"`
}

type Reply struct {
	ID        int64   `json:"id"`
	Post      int64   `json:"post"`
	Parent    *int64  `json:"parent,omitempty"`
	Content   string  `json:"content"`
	Author    Author  `json:"author"`
	Children  []Reply `json:"children,omitempty"`
	CreatedAt string  `json:"created_at"`
}

type Post struct {
	ID        int64   `json:"id"`
	Title     string  `json:"title"`
	Content   string  `json:"content"`
	Author    Author  `json:"author"`
	Tags      []Tag   `json:"tags,omitempty"`
	Images    []Image `json:"images,omitempty"`
	Products  []SPU   `json:"products,omitempty"`
	Replies   []Reply `json:"replies,omitempty"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt string  `json:"updated_at"`
}

// PostDraft is the write shape for creating or updating a post.
type PostDraft struct {
	Title    string  `json:"title"`
	Content  string  `json:"content"`
	TagIDs   []int64 `json:"tag_ids,omitempty"`
	ImageIDs []int64 `json:"image_ids,omitempty"`
}

// SPU is a catalog product (Standard Product Unit).
type SPU struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	Category      int64   `json:"category"`
	Brand         string  `json:"brand"`
	Series        string  `json:"series"`
	IsActive      bool    `json:"is_active"`
	Image         string  `json:"image,omitempty"`
	IsFavorited   bool    `json:"is_favorited"`
	ReviewCount   int     `json:"review_count"`
	AverageRating float64 `json:"average_rating"`
	CreatedAt     string  `json:"created_at"`
	UpdatedAt     string  `json:"updated_at"`
}

// SKU is a purchasable variant of an SPU. Price is the backend's decimal
// string; the client never does arithmetic on it.
type SKU struct {
	SKUCode  string `json:"sku_code"`
	SPU      int64  `json:"spu,omitempty"`
	SPUName  string `json:"spu_name,omitempty"`
	Title    string `json:"title"`
	Price    string `json:"price"`
	Stock    int    `json:"stock,omitempty"`
	IsActive bool   `json:"is_active"`
	Image    string `json:"image,omitempty"`
}

type Review struct {
	ID         int64  `json:"id"`
	SPU        int64  `json:"spu"`
	User       int64  `json:"user"`
	Username   string `json:"username"`
	UserAvatar string `json:"user_avatar,omitempty"`
	Content    string `json:"content"`
	Rating     int    `json:"rating"`
	CreatedAt  string `json:"created_at"`
	UpdatedAt  string `json:"updated_at"`
}

type Category struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Parent   *int64 `json:"parent,omitempty"`
	Level    int    `json:"level"`
	FullName string `json:"full_name"`
}

// CartItem line totals (TotalPrice) are computed by the server; the cart
// container never derives them locally.
type CartItem struct {
	ID         int64  `json:"id"`
	User       string `json:"user,omitempty"`
	SKU        *SKU   `json:"sku,omitempty"`
	Quantity   int    `json:"quantity"`
	TotalPrice string `json:"total_price"`
}

// PostFavorite and ProductFavorite embed their target wholesale, as the
// backend serializes them.
type PostFavorite struct {
	ID   int64           `json:"id"`
	User string          `json:"user,omitempty"`
	Post json.RawMessage `json:"post"`
}

type ProductFavorite struct {
	ID        int64  `json:"id"`
	User      string `json:"user,omitempty"`
	Product   SPU    `json:"product"`
	CreatedAt string `json:"created_at"`
}

// FavoriteStatus is the response of toggle/check favorite endpoints.
type FavoriteStatus struct {
	Message     string `json:"message,omitempty"`
	IsFavorited bool   `json:"is_favorited"`
}

type Artist struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Image     string `json:"image,omitempty"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

type Album struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Artist      int64  `json:"artist"`
	CoverImage  string `json:"cover_image,omitempty"`
	ReleaseDate string `json:"release_date,omitempty"`
	Description string `json:"description"`
	IsActive    bool   `json:"is_active"`
	UpdatedAt   string `json:"updated_at"`
}

type Track struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Artist      int64  `json:"artist"`
	Album       *int64 `json:"album,omitempty"`
	TrackNumber *int   `json:"track_number,omitempty"`
	Duration    string `json:"duration,omitempty"`
	File        string `json:"file,omitempty"`
	IsActive    bool   `json:"is_active"`
	UpdatedAt   string `json:"updated_at"`
}

type Notice struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	Author    int64  `json:"author"`
	IsActive  bool   `json:"is_active"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

type Video struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	VideoType   string `json:"video_type"`
	File        string `json:"file,omitempty"`
	BilibiliURL string `json:"bilibili_url,omitempty"`
	Thumbnail   string `json:"thumbnail,omitempty"`
	Duration    string `json:"duration,omitempty"`
	IsActive    bool   `json:"is_active"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}
