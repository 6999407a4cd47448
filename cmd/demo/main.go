package main

import (
	"fmt"
	"os"
	"sync"

	"github.com/samvad-hq/samvad-api-client/internal/config"
	"github.com/samvad-hq/samvad-api-client/internal/logger"
	"github.com/samvad-hq/samvad-api-client/pkg/apiclient"
)

// User is a record from the demo API's /users collection.
type User struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// NewPost is the payload for creating a post on the demo API.
type NewPost struct {
	Title  string `json:"title"`
	Body   string `json:"body"`
	UserID int    `json:"userId"`
}

// Post is the demo API's representation of a created post.
type Post struct {
	ID     int    `json:"id"`
	Title  string `json:"title"`
	Body   string `json:"body"`
	UserID int    `json:"userId"`
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "demo failed: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := logger.Init(cfg)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Close()

	logger.InfoObj("demo starting", "config", cfg)

	client, err := apiclient.New(cfg.APIBaseURL,
		apiclient.WithTimeout(cfg.HTTPTimeout),
		apiclient.WithLogger(log),
	)
	if err != nil {
		return fmt.Errorf("build client: %w", err)
	}

	var wg sync.WaitGroup

	wg.Add(1)
	client.Perform(apiclient.NewRequest(apiclient.MethodGet, "/users"), func(resp apiclient.Response[[]byte], err error) {
		defer wg.Done()
		if err != nil {
			logger.ErrorObj("fetch users failed", "error", err)
			return
		}
		users, derr := apiclient.Decode[[]User](resp)
		if derr != nil {
			log.Errorw("decode users failed", "error", derr, "body", string(resp.Body))
			return
		}
		logger.InfoObj("fetched users", "count", len(users.Body))
	})

	post, err := apiclient.NewJSONRequest(apiclient.MethodPost, "/posts", NewPost{
		Title:  "hello",
		Body:   "hello from the api client demo",
		UserID: 1,
	})
	if err != nil {
		return fmt.Errorf("build post request: %w", err)
	}

	wg.Add(1)
	client.Perform(post, func(resp apiclient.Response[[]byte], err error) {
		defer wg.Done()
		if err != nil {
			logger.ErrorObj("create post failed", "error", err)
			return
		}
		created, derr := apiclient.Decode[Post](resp)
		if derr != nil {
			log.Errorw("decode post failed", "error", derr, "body", string(resp.Body))
			return
		}
		logger.InfoObj("created post", "post", created.Body)
	})

	wg.Wait()
	return nil
}
