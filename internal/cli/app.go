package cli

import (
	"bufio"
	"context"
	"log"
	"os"

	"github.com/arkadys/soundclub/internal/api"
	"github.com/arkadys/soundclub/internal/config"
	"github.com/arkadys/soundclub/internal/logging"
	"github.com/arkadys/soundclub/internal/models"
	"github.com/arkadys/soundclub/internal/session"
	"github.com/arkadys/soundclub/internal/stores"

	_ "modernc.org/sqlite"
)

// App bundles the transport, the session bridge and the state containers
// behind the interactive command loop.
type App struct {
	config *config.Config
	bridge *session.Bridge
	client *api.Client

	user      *stores.User
	cart      *stores.Cart
	products  *stores.Products
	posts     *stores.Posts
	favorites *stores.Favorites
	artists   *stores.RefList[models.Artist]
	albums    *stores.RefList[models.Album]
	tracks    *stores.RefList[models.Track]
	notices   *stores.RefList[models.Notice]
	videos    *stores.RefList[models.Video]

	reader *bufio.Reader
}

func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	bridge, err := session.Open(ctx, c.SessionDBPath)
	if err != nil {
		log.Printf("error initializing session database: %s", err.Error())
		return nil, err
	}

	client, err := api.NewClient(c.ServerBaseURL, bridge, logger)
	if err != nil {
		return nil, err
	}

	user, err := stores.NewUser(ctx, client, bridge, logger)
	if err != nil {
		return nil, err
	}

	cart := stores.NewCart(client, user, logger)

	return &App{
		config:    c,
		bridge:    bridge,
		client:    client,
		user:      user,
		cart:      cart,
		products:  stores.NewProducts(client, user, cart, logger),
		posts:     stores.NewPosts(client, logger),
		favorites: stores.NewFavorites(client, user, logger),
		artists:   stores.NewArtists(client, logger),
		albums:    stores.NewAlbums(client, logger),
		tracks:    stores.NewTracks(client, logger),
		notices:   stores.NewNotices(client, logger),
		videos:    stores.NewVideos(client, logger),
		reader:    bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) Run(ctx context.Context) {
	defer a.bridge.Close()
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.user.IsLoggedIn()
}
