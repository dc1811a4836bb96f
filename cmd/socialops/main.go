package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/socialops/agent/internal/config"
	"github.com/socialops/agent/internal/event"
	"github.com/socialops/agent/internal/inbox"
	"github.com/socialops/agent/internal/plugin"
	"github.com/socialops/agent/internal/storage"
	"github.com/socialops/agent/plugins/restaurants"
	"github.com/socialops/agent/plugins/salons"
)

func main() {
	settings, err := config.Load()
	if err != nil {
		log.Printf("[Main] Using default settings: %v", err)
		settings = config.DefaultSettings()
	}

	dbPath := flag.String("db", settings.DBPath, "SQLite database path")
	lang := flag.String("lang", settings.DefaultLanguage, "Language for reply drafts")
	importFile := flag.String("import", "", "JSON file with inbound records to import")
	listThreads := flag.Bool("threads", false, "List threads with SLA status")
	listLeads := flag.Bool("leads", false, "Show the lead pipeline")
	showProfile := flag.Bool("profile", false, "Print the workspace profile")
	suggestFor := flag.String("suggest", "", "Thread ID to draft a reply for")
	convertThread := flag.String("convert", "", "Thread ID to convert into a lead")
	flag.Parse()

	if err := storage.Init(*dbPath); err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}

	registry := plugin.NewRegistry()
	for _, p := range []plugin.Plugin{salons.New(), restaurants.New()} {
		if err := registry.Register(p); err != nil {
			log.Fatalf("Failed to register plugin: %v", err)
		}
	}
	svc := inbox.NewService(registry, event.NewBus())

	switch {
	case *importFile != "":
		runImport(svc, *importFile)
	case *listThreads:
		runThreads(svc)
	case *listLeads:
		runLeads()
	case *showProfile:
		runProfile()
	case *suggestFor != "":
		runSuggest(svc, *suggestFor, *lang)
	case *convertThread != "":
		runConvert(svc, *convertThread)
	default:
		flag.Usage()
	}
}

func runImport(svc *inbox.Service, path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("Failed to read %s: %v", path, err)
	}

	var records []storage.InboundRecord
	if err := json.Unmarshal(data, &records); err != nil {
		log.Fatalf("Failed to parse %s: %v", path, err)
	}

	result, err := svc.Import(records)
	if err != nil {
		log.Fatalf("Import failed: %v", err)
	}

	fmt.Printf("Imported %d messages into %d threads\n", result.Inserted, result.ThreadsAffected)
	for _, recErr := range result.Errors {
		fmt.Printf("  rejected %v\n", recErr)
	}
}

func runThreads(svc *inbox.Service) {
	views, err := svc.ListThreads("", "", time.Now())
	if err != nil {
		log.Fatalf("Failed to list threads: %v", err)
	}

	for _, v := range views {
		fmt.Printf("%-10s %-12s %-20s %-8s last=%s msgs=%d\n",
			v.SLA, v.Platform, v.Title, v.Status,
			v.LastMessageAt.Format("2006-01-02 15:04"), len(v.Messages))
	}
}

func runLeads() {
	pipeline, err := storage.Pipeline()
	if err != nil {
		log.Fatalf("Failed to load pipeline: %v", err)
	}

	for _, status := range storage.LeadStatuses {
		fmt.Printf("%s (%d)\n", status, len(pipeline[status]))
		for _, lead := range pipeline[status] {
			fmt.Printf("  %-20s %s\n", lead.Name, lead.Phone)
		}
	}
}

func runProfile() {
	profile, err := storage.GetProfile()
	if err != nil {
		log.Fatalf("Failed to load profile: %v", err)
	}

	data, _ := json.MarshalIndent(profile, "", "  ")
	fmt.Println(string(data))
}

func runSuggest(svc *inbox.Service, threadID, lang string) {
	draft, err := svc.SuggestReply(threadID, lang)
	if err != nil {
		log.Fatalf("Failed to draft reply: %v", err)
	}
	fmt.Println(draft)
}

func runConvert(svc *inbox.Service, threadID string) {
	leadID, err := svc.ConvertToLead(threadID)
	if err != nil {
		log.Fatalf("Failed to convert thread: %v", err)
	}
	fmt.Printf("Lead %s\n", leadID)
}
