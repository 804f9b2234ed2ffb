package stores

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/arkadys/soundclub/internal/api"
	"github.com/arkadys/soundclub/internal/logging"
	"github.com/arkadys/soundclub/internal/models"
	"github.com/arkadys/soundclub/internal/session"
)

// DefaultAvatarURL is shown for anonymous users and for profiles without an
// uploaded avatar.
const DefaultAvatarURL = "/assets/defaultAvatar.png"

// User is the session container. It owns the credential/profile pair and
// keeps the durable bridge in lockstep with it: the two fields are always set
// and cleared together, in memory and in storage.
type User struct {
	notifier
	client *api.Client
	bridge *session.Bridge
	log    logging.Logger

	token   string
	profile *models.Profile
}

// NewUser builds the session container, rehydrating the pair from the bridge.
// A stored profile that fails to decode resets the whole session; that is a
// deliberate recovery path, not an error.
func NewUser(ctx context.Context, client *api.Client, bridge *session.Bridge, log logging.Logger) (*User, error) {
	u := &User{client: client, bridge: bridge, log: log.With("store", "user")}

	token, profileData, err := bridge.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}

	if token == "" || len(profileData) == 0 {
		if token != "" || len(profileData) != 0 {
			// Half a session is worse than none.
			if err := bridge.Clear(ctx); err != nil {
				return nil, fmt.Errorf("reset partial session: %w", err)
			}
			u.log.Warn(ctx, "partial session in storage, cleared")
		}
		return u, nil
	}

	var profile models.Profile
	if err := json.Unmarshal(profileData, &profile); err != nil {
		if clearErr := bridge.Clear(ctx); clearErr != nil {
			return nil, fmt.Errorf("reset malformed session: %w", clearErr)
		}
		u.log.Warn(ctx, "stored profile is malformed, session cleared", "error", err)
		return u, nil
	}

	u.token = token
	u.profile = &profile
	return u, nil
}

// IsLoggedIn reports whether a session is active.
func (u *User) IsLoggedIn() bool { return u.token != "" }

// Token returns the current credential, or "" when logged out.
func (u *User) Token() string { return u.token }

// Profile returns a copy of the current profile; the zero value when logged out.
func (u *User) Profile() models.Profile {
	if u.profile == nil {
		return models.Profile{}
	}
	return *u.profile
}

func (u *User) ID() int64 {
	if u.profile == nil {
		return 0
	}
	return u.profile.ID
}

func (u *User) Username() string {
	if u.profile == nil {
		return ""
	}
	return u.profile.Username
}

func (u *User) Email() string {
	if u.profile == nil {
		return ""
	}
	return u.profile.Email
}

func (u *User) Bio() string {
	if u.profile == nil {
		return ""
	}
	return u.profile.Bio
}

func (u *User) DateJoined() string {
	if u.profile == nil {
		return ""
	}
	return u.profile.DateJoined
}

// AvatarURL resolves to the default image when logged out or when the profile
// has no avatar.
func (u *User) AvatarURL() string {
	if u.IsLoggedIn() && u.profile.Avatar != "" {
		return u.profile.Avatar
	}
	return DefaultAvatarURL
}

// Login installs a new session, unconditionally replacing any prior one, and
// persists the pair.
func (u *User) Login(ctx context.Context, profile models.Profile, token string) error {
	data, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}
	if err := u.bridge.Save(ctx, token, data); err != nil {
		return fmt.Errorf("persist session: %w", err)
	}

	u.token = token
	u.profile = &profile
	u.notify()
	return nil
}

// Logout destroys the session in memory and in storage. Idempotent.
func (u *User) Logout(ctx context.Context) error {
	if err := u.bridge.Clear(ctx); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	u.token = ""
	u.profile = nil
	u.notify()
	return nil
}

// Register creates an account; the caller signs in separately.
func (u *User) Register(ctx context.Context, username, email, password string) error {
	if err := u.client.Register(ctx, username, email, password); err != nil {
		u.log.Error(ctx, "registration failed", "error", err)
		return err
	}
	return nil
}

// SignIn authenticates against the backend and installs the returned session.
func (u *User) SignIn(ctx context.Context, username, password string) error {
	res, err := u.client.Login(ctx, username, password)
	if err != nil {
		u.log.Error(ctx, "login failed", "username", username, "error", err)
		return err
	}
	return u.Login(ctx, res.User, res.Access)
}

// UpdateBio patches the bio on the server and reconciles the stored profile
// with the server's copy.
func (u *User) UpdateBio(ctx context.Context, bio string) error {
	if !u.IsLoggedIn() {
		return ErrNotLoggedIn
	}
	profile, err := u.client.UpdateBio(ctx, bio)
	if err != nil {
		u.log.Error(ctx, "bio update failed", "error", err)
		return err
	}
	return u.Login(ctx, *profile, u.token)
}

// UploadAvatar replaces the avatar and reconciles the stored profile.
func (u *User) UploadAvatar(ctx context.Context, filename string, data []byte) error {
	if !u.IsLoggedIn() {
		return ErrNotLoggedIn
	}
	profile, err := u.client.UploadAvatar(ctx, filename, data)
	if err != nil {
		u.log.Error(ctx, "avatar upload failed", "error", err)
		return err
	}
	return u.Login(ctx, *profile, u.token)
}

// DeleteAccount removes the account server-side, then tears the session down.
func (u *User) DeleteAccount(ctx context.Context, password string) error {
	if !u.IsLoggedIn() {
		return ErrNotLoggedIn
	}
	if err := u.client.DeleteAccount(ctx, password); err != nil {
		u.log.Error(ctx, "account deletion failed", "error", err)
		return err
	}
	return u.Logout(ctx)
}
