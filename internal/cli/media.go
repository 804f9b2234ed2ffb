package cli

import (
	"context"
	"fmt"
	"log"

	"github.com/arkadys/soundclub/internal/api"
)

func (a *App) listRef(ctx context.Context, name string) {
	switch name {
	case "artists":
		if err := a.artists.Fetch(ctx, nil); err != nil {
			log.Println(api.ServerMessage(err))
			return
		}
		for _, artist := range a.artists.Items() {
			fmt.Printf("%4d  %s\n", artist.ID, artist.Name)
		}

	case "albums":
		if err := a.albums.Fetch(ctx, nil); err != nil {
			log.Println(api.ServerMessage(err))
			return
		}
		for _, album := range a.albums.Items() {
			fmt.Printf("%4d  %-40s released %s\n", album.ID, album.Name, album.ReleaseDate)
		}

	case "music":
		if err := a.tracks.Fetch(ctx, nil); err != nil {
			log.Println(api.ServerMessage(err))
			return
		}
		for _, track := range a.tracks.Items() {
			fmt.Printf("%4d  %-40s %s\n", track.ID, track.Title, track.Duration)
		}

	case "notices":
		if err := a.notices.Fetch(ctx, nil); err != nil {
			log.Println(api.ServerMessage(err))
			return
		}
		for _, notice := range a.notices.Items() {
			fmt.Printf("%4d  %s\n", notice.ID, notice.Title)
		}

	case "videos":
		if err := a.videos.Fetch(ctx, nil); err != nil {
			log.Println(api.ServerMessage(err))
			return
		}
		for _, video := range a.videos.Items() {
			fmt.Printf("%4d  %-40s [%s]\n", video.ID, video.Title, video.VideoType)
		}
	}
}
