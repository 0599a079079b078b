package commands

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"jailoo/pkg/client"
)

const tokenEnvVar = "JAILOO_ADMIN_TOKEN"

// HandlePost is the admin console: list the posts, create one with its
// video, edit the text fields, replace a video, or delete a post.
func HandlePost(args []string) {
	if len(args) < 3 {
		ExitOnError(errors.New("usage: jailoo post <list|create|update|delete|replace> [flags]\nuse help command for more information"))
	}

	addr := os.Getenv("JAILOO_ADDRESS")
	c, err := client.New(addr, client.EnvTokenSource(tokenEnvVar))
	if err != nil {
		ExitOnError(fmt.Errorf("%w (set JAILOO_ADDRESS)", err))
	}

	ctx := context.Background()

	switch args[2] {
	case "list":
		runList(ctx, c, args[3:])
	case "create":
		runCreate(ctx, c, args[3:])
	case "update":
		runUpdate(ctx, c, args[3:])
	case "delete":
		runDelete(ctx, c, args[3:])
	case "replace":
		runReplace(ctx, c, args[3:])
	default:
		ExitOnError(fmt.Errorf("unknown post subcommand: %s", args[2]))
	}
}

func runList(ctx context.Context, c *client.Client, args []string) {
	fs := flag.NewFlagSet("list", flag.ExitOnError)
	order := fs.String("order", "desc", "sort order: asc or desc")
	_ = fs.Parse(args)

	posts, err := c.ListPosts(ctx, *order)
	if err != nil {
		ExitOnError(err)
	}

	for _, p := range posts {
		video := "-"
		if p.VideoFile != nil {
			video = *p.VideoFile
		}
		fmt.Printf("%4d  %-12s %-8s %-20s %s\n", p.ID, p.Region, p.Season, video, p.Title)
	}
}

func runCreate(ctx context.Context, c *client.Client, args []string) {
	fs := flag.NewFlagSet("create", flag.ExitOnError)
	title := fs.String("title", "", "post title")
	content := fs.String("content", "", "post body")
	fact := fs.String("fact", "", "interesting fact")
	region := fs.String("region", "", "region slug")
	season := fs.String("season", "", "season slug")
	mapRegion := fs.String("map-region", "", "map highlight region (defaults to region)")
	mapURL := fs.String("map-url", "", "external map link")
	videoPath := fs.String("video", "", "path to the video file")
	_ = fs.Parse(args)

	file, cleanup := openVideo(*videoPath)
	defer cleanup()

	session := c.NewSession(client.OpCreate)
	session.OnEvent = renderEvent

	outcome, err := session.Start(ctx, client.UploadInput{
		Form: client.CreateForm{
			Title:     *title,
			Content:   *content,
			Fact:      *fact,
			Region:    *region,
			Season:    *season,
			MapRegion: *mapRegion,
			MapURL:    *mapURL,
		},
		File: file,
	})
	if err != nil {
		ExitOnError(err)
	}
	if !outcome.Succeeded() {
		ExitOnError(errors.New(outcome.Message))
	}

	fmt.Println("post created")
}

func runUpdate(ctx context.Context, c *client.Client, args []string) {
	fs := flag.NewFlagSet("update", flag.ExitOnError)
	id := fs.Int64("id", 0, "post id")
	title := fs.String("title", "", "post title")
	content := fs.String("content", "", "post body")
	fact := fs.String("fact", "", "interesting fact")
	region := fs.String("region", "", "region slug")
	season := fs.String("season", "", "season slug")
	mapRegion := fs.String("map-region", "", "map highlight region")
	mapURL := fs.String("map-url", "", "external map link")
	_ = fs.Parse(args)

	form := client.UpdateForm{
		ID:        *id,
		Title:     *title,
		Content:   *content,
		Fact:      *fact,
		Region:    *region,
		Season:    *season,
		MapRegion: *mapRegion,
	}
	if *mapURL != "" {
		form.MapURL = mapURL
	}

	post, err := c.UpdatePost(ctx, form)
	if err != nil {
		ExitOnError(err)
	}

	fmt.Printf("post %d updated\n", post.ID)
}

func runDelete(ctx context.Context, c *client.Client, args []string) {
	fs := flag.NewFlagSet("delete", flag.ExitOnError)
	id := fs.Int64("id", 0, "post id")
	yes := fs.Bool("yes", false, "skip the confirmation prompt")
	_ = fs.Parse(args)

	if !*yes && !confirm(fmt.Sprintf("delete post %d and its video?", *id)) {
		fmt.Println("aborted")

		return
	}

	if err := c.DeletePost(ctx, *id); err != nil {
		ExitOnError(err)
	}

	fmt.Printf("post %d deleted\n", *id)
}

func runReplace(ctx context.Context, c *client.Client, args []string) {
	fs := flag.NewFlagSet("replace", flag.ExitOnError)
	id := fs.Int64("id", 0, "post id")
	videoPath := fs.String("video", "", "path to the new video file")
	_ = fs.Parse(args)

	file, cleanup := openVideo(*videoPath)
	defer cleanup()

	session := c.NewSession(client.OpReplace)
	session.OnEvent = renderEvent

	outcome, err := session.Start(ctx, client.UploadInput{PostID: *id, File: file})
	if err != nil {
		ExitOnError(err)
	}
	if !outcome.Succeeded() {
		ExitOnError(errors.New(outcome.Message))
	}

	fmt.Printf("video replaced: %s\n", outcome.ReplacedFile())
}

// openVideo stats and sniffs the chosen file so the session can validate it
// before any bytes move. A missing -video flag yields a nil file and lets
// the session report the field error.
func openVideo(path string) (*client.File, func()) {
	if path == "" {
		return nil, func() {}
	}

	f, err := os.Open(path)
	if err != nil {
		ExitOnError(err)
	}

	info, err := f.Stat()
	if err != nil {
		ExitOnError(err)
	}

	mtype, err := mimetype.DetectFile(path)
	if err != nil {
		ExitOnError(err)
	}

	return &client.File{
		Name:    filepath.Base(path),
		Type:    mtype.String(),
		Size:    info.Size(),
		Content: f,
	}, func() { f.Close() }
}

func renderEvent(ev client.Event) {
	switch ev.Kind {
	case client.EventProgress:
		fmt.Printf("\ruploading %3d%%", ev.Pct)
	case client.EventSucceeded:
		fmt.Println("\rupload complete  ")
	default:
		fmt.Printf("\r%s\n", ev.Message)
	}
}

func confirm(prompt string) bool {
	fmt.Printf("%s [y/N]: ", prompt)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}

	return strings.EqualFold(strings.TrimSpace(line), "y")
}
