package cli

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/arkadys/soundclub/internal/api"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

func (a *App) register(ctx context.Context) {
	userName, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		log.Println(err.Error())
		return
	}
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		log.Println(err.Error())
		return
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		log.Println(err.Error())
		return
	}

	if err := a.user.Register(ctx, userName, email, password); err != nil {
		log.Printf("Registration unsuccessful: %s", api.ServerMessage(err))
		return
	}
	fmt.Println("Registered. You can now log in.")
}

func (a *App) login(ctx context.Context) {
	userName, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		log.Println(err.Error())
		return
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		log.Println(err.Error())
		return
	}

	if err := a.user.SignIn(ctx, userName, password); err != nil {
		log.Printf("Login unsuccessful: %s", api.ServerMessage(err))
		return
	}
	fmt.Printf("Logged in as %s\n", a.user.Username())
}

func (a *App) logout(ctx context.Context) {
	if err := a.user.Logout(ctx); err != nil {
		log.Println(err.Error())
		return
	}
	fmt.Println("Logged out")
}

func (a *App) whoami() {
	if !a.isLoggedIn() {
		fmt.Println("Not logged in")
		return
	}
	p := a.user.Profile()
	fmt.Printf("%s <%s>\n", p.Username, p.Email)
	if p.Bio != "" {
		fmt.Println(p.Bio)
	}
	fmt.Printf("avatar: %s, joined: %s\n", a.user.AvatarURL(), p.DateJoined)
}

func (a *App) updateBio(ctx context.Context) {
	bio, err := GetMultiline(a.reader, "Enter bio", os.Stdout)
	if err != nil {
		log.Println(err.Error())
		return
	}
	if err := a.user.UpdateBio(ctx, bio); err != nil {
		log.Printf("Bio update failed: %s", api.ServerMessage(err))
		return
	}
	fmt.Println("Bio updated")
}

func (a *App) uploadAvatar(ctx context.Context) {
	path, err := getSimpleText(a.reader, "Enter avatar file path", os.Stdout)
	if err != nil {
		log.Println(err.Error())
		return
	}
	data, err := os.ReadFile(path)
	if err != nil {
		log.Println(err.Error())
		return
	}
	if err := a.user.UploadAvatar(ctx, path, data); err != nil {
		log.Printf("Avatar upload failed: %s", api.ServerMessage(err))
		return
	}
	fmt.Println("Avatar updated")
}

func (a *App) deleteAccount(ctx context.Context) {
	confirm, err := getSimpleText(a.reader, "Type your username to confirm deletion", os.Stdout)
	if err != nil {
		log.Println(err.Error())
		return
	}
	if confirm != a.user.Username() {
		fmt.Println("Aborted")
		return
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		log.Println(err.Error())
		return
	}
	if err := a.user.DeleteAccount(ctx, password); err != nil {
		log.Printf("Account deletion failed: %s", api.ServerMessage(err))
		return
	}
	fmt.Println("Account deleted")
}
