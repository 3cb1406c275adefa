package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"vitrine/internal/applog"
	"vitrine/internal/config"
	"vitrine/internal/draft"
	"vitrine/internal/prefs"
	"vitrine/internal/projects"
	"vitrine/internal/sports"
	"vitrine/internal/tui"
	"vitrine/internal/types"
)

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "sports":
			runSports(os.Args[2:])
			return
		case "draft":
			runDraft(os.Args[2:])
			return
		case "projects":
			runProjects(os.Args[2:])
			return
		case "prefs":
			runPrefs(os.Args[2:])
			return
		case "help", "--help", "-h":
			printHelp()
			return
		}
	}

	cfg := mustLoadConfig()
	store := mustOpenStore(cfg)
	defer store.Close()

	if cfg.LogDir != "" {
		if err := applog.Init(cfg.LogDir); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not open log: %v\n", err)
		}
		defer applog.Close()
	}

	p := tea.NewProgram(tui.NewModel(store, cfg), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printHelp() {
	fmt.Print(`vitrine — terminal portfolio console

Usage:
  vitrine                                    Start the TUI (default)

  vitrine sports [--query q] [--read key]    Fetch sport summaries
    --query <q>          Filter results by title
    --read <key>         Print the readable article for one topic

  vitrine draft --purpose <p> --tone <t>     Suggest a contact draft
    --name, --email, --subject, --message    Existing form values
    Purposes: greeting, inquiry, collaboration, support, thanks
    Tones: friendly, professional, concise, enthusiastic, polite

  vitrine projects [--query q] [--category c] [--sort s]
    --category           all, web, data, other (default: all)
    --sort               newest, oldest, title (default: newest)

  vitrine prefs list                         List stored preference keys
  vitrine prefs get <key>                    Print a stored value
  vitrine prefs set <key> <value>            Store a string value
  vitrine prefs del <key>                    Delete a key

Environment:
  VITRINE_DB             Preference database path (default: ~/.local/share/vitrine/vitrine.db)
  VITRINE_SUMMARY_URL    Encyclopedia summary endpoint
  VITRINE_MODEL          Draft assistant model (default: gpt-4o-mini)
  VITRINE_LOG_DIR        Enable the application log in this directory
  OPENAI_API_KEY         Overrides the stored draft-assistant credential
`)
}

func mustLoadConfig() config.Config {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

func mustOpenStore(cfg config.Config) *prefs.Store {
	store, err := prefs.Open(cfg.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening preference store: %v\n", err)
		os.Exit(1)
	}
	return store
}

func runSports(args []string) {
	fs := flag.NewFlagSet("sports", flag.ExitOnError)
	query := fs.String("query", "", "Filter results by title")
	read := fs.String("read", "", "Print the readable article for one topic key")
	fs.Parse(args)

	cfg := mustLoadConfig()
	client := sports.NewClient(cfg.SummaryURL)

	if *read != "" {
		runSportsRead(client, *read)
		return
	}

	results := client.LoadBatch(context.Background(), sports.Topics)
	for _, r := range sports.FilterByTitle(results, *query) {
		marker := ""
		if r.Fallback {
			marker = " [offline]"
		}
		fmt.Printf("%s%s\n  %s\n  %s\n\n", r.Title, marker, r.Summary, r.URL)
	}
}

func runSportsRead(client *sports.Client, key string) {
	var topic *types.SportTopic
	for i := range sports.Topics {
		if sports.Topics[i].Key == key {
			topic = &sports.Topics[i]
			break
		}
	}
	if topic == nil {
		fmt.Fprintf(os.Stderr, "Unknown topic %q. Topics:\n", key)
		for _, t := range sports.Topics {
			fmt.Fprintf(os.Stderr, "  - %s\n", t.Key)
		}
		os.Exit(1)
	}

	sum, err := client.FetchSummary(context.Background(), topic.Ref)
	pageURL := "https://en.wikipedia.org/wiki/" + topic.Ref
	if err == nil && sum.URL != "" {
		pageURL = sum.URL
	}

	title, text, err := sports.ReadArticle(pageURL)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("%s\n\n%s\n", title, text)
}

func runDraft(args []string) {
	fs := flag.NewFlagSet("draft", flag.ExitOnError)
	purpose := fs.String("purpose", "greeting", "Draft purpose")
	tone := fs.String("tone", "friendly", "Draft tone")
	name := fs.String("name", "", "Sender name")
	email := fs.String("email", "", "Sender email")
	subject := fs.String("subject", "", "Existing subject")
	message := fs.String("message", "", "Existing message")
	fs.Parse(args)

	cfg := mustLoadConfig()
	store := mustOpenStore(cfg)
	defer store.Close()

	key := cfg.APIKey
	if key == "" {
		key = store.GetString(prefs.KeyAPIKey, "")
	}

	assistant := draft.NewAssistant(key, cfg.Model, "")
	d, src := assistant.Draft(context.Background(), draft.Context{
		Name:    *name,
		Email:   *email,
		Subject: *subject,
		Message: *message,
		Purpose: *purpose,
		Tone:    *tone,
	})

	fmt.Fprintln(os.Stderr, src.Status())
	fmt.Printf("Subject: %s\n\n%s\n", d.Subject, d.Body)
	if d.Help != "" {
		fmt.Printf("\n(%s)\n", d.Help)
	}
}

func runProjects(args []string) {
	fs := flag.NewFlagSet("projects", flag.ExitOnError)
	query := fs.String("query", "", "Search title and description")
	category := fs.String("category", projects.CategoryAll, "Category filter")
	sortKey := fs.String("sort", string(types.SortNewest), "Sort order")
	fs.Parse(args)

	list := projects.Shape(projects.Catalog, *query, *category, types.SortMode(*sortKey))
	if len(list) == 0 {
		fmt.Println("No projects match.")
		return
	}
	for _, p := range list {
		fmt.Printf("%-16s %-6s %s\n  %s\n", p.Title, p.Category, p.Date, p.Description)
	}
}

func runPrefs(args []string) {
	if len(args) == 0 {
		args = []string{"list"}
	}

	cfg := mustLoadConfig()
	store := mustOpenStore(cfg)
	defer store.Close()

	switch args[0] {
	case "list":
		keys, err := store.Keys()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		for _, k := range keys {
			fmt.Println(k)
		}
	case "get":
		if len(args) < 2 {
			fmt.Fprintln(os.Stderr, "Usage: vitrine prefs get <key>")
			os.Exit(1)
		}
		fmt.Println(store.GetString(args[1], ""))
	case "set":
		if len(args) < 3 {
			fmt.Fprintln(os.Stderr, "Usage: vitrine prefs set <key> <value>")
			os.Exit(1)
		}
		if err := store.Set(args[1], args[2]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "del":
		if len(args) < 2 {
			fmt.Fprintln(os.Stderr, "Usage: vitrine prefs del <key>")
			os.Exit(1)
		}
		if err := store.Delete(args[1]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "Unknown prefs command %q. Use list, get, set, or del.\n", args[0])
		os.Exit(1)
	}
}
