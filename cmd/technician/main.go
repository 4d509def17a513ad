package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"strconv"
	"syscall"
	"time"

	"fixitfast_technician/internal/analytics"
	"fixitfast_technician/internal/auth"
	"fixitfast_technician/internal/device"
	"fixitfast_technician/internal/events"
	"fixitfast_technician/internal/incidents"
	"fixitfast_technician/internal/push"
	"fixitfast_technician/internal/storage"
	"fixitfast_technician/internal/tasks"
	"fixitfast_technician/internal/transport"
	"fixitfast_technician/platform/config"
	"fixitfast_technician/platform/logger"
)

const backgroundPoolSize = 2

func main() {
	var (
		username   = flag.String("username", "", "backend username (joe and jill map to their demo accounts)")
		password   = flag.String("password", "", "backend password")
		useOAuth   = flag.Bool("oauth", false, "authenticate with the OAuth token endpoint instead of basic auth")
		technician = flag.String("technician", "", "list incidents assigned to this technician")
		contact    = flag.String("contact", "", "list incidents reported by this contact")
		status     = flag.String("status", "", "status filter applied to the listed incidents (New, InProgress, Complete or ALL)")
		showID     = flag.Int("show", 0, "fetch a single incident by id")
		withImage  = flag.Bool("image", false, "also fetch the incident photo when showing a single incident")
		updateID   = flag.Int("update", 0, "update the status of the incident with this id")
		newStatus  = flag.String("to", "", "target status for -update")
		note       = flag.String("note", "", "note appended with -update")
		pushToken  = flag.String("register-push", "", "register this device token for push notifications")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	log := logger.New(cfg.Env)
	log.Info("starting technician client", "env", cfg.Env, "backend", cfg.BackendBaseURL)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ========================================================================
	// Infrastructure Layer
	// ========================================================================

	client := transport.NewClient(cfg, log)
	bus := events.NewInMemoryBus(log)
	pool := tasks.NewPool(backgroundPoolSize, log)

	info := device.NewInfo(runtime.GOOS + "/" + runtime.Version())
	location := device.NewDefaultLocation(cfg)

	creds := auth.NewService(client, cfg, log)
	if *username != "" {
		if *useOAuth {
			err = creds.OAuthLogin(ctx, *username, *password)
		} else {
			err = creds.BasicLogin(ctx, *username, *password)
		}
		if err != nil {
			log.Error("login failed", "username", *username, "error", err)
			os.Exit(1)
		}
		log = log.WithUserID(creds.Username())
	}

	// ========================================================================
	// Domain Layer
	// ========================================================================

	repo := incidents.NewRepository(client, creds, cfg, location, bus, log)
	images := storage.NewImages(client, creds, cfg, log)
	registrar := push.NewRegistrar(client, creds, cfg, cfg, pool, bus, log)

	pipeline := analytics.NewPipeline(client, creds, cfg, cfg, info, location, log)
	pipeline.Start()
	pipeline.AddEvent("DataControlEvent", map[string]string{
		"action":    "application initialization",
		"timeStamp": time.Now().Format("2006-01-02 15:04:05"),
	})
	pipeline.AddEvent("DataControlEvent", map[string]string{
		"action":              "loaded application preferences",
		"mobile-backend-id":   cfg.BackendID,
		"mobile-backend-name": cfg.MobileBackendName,
		"application-key":     cfg.GetApplicationKey(),
		"timeStamp":           time.Now().Format("2006-01-02 15:04:05"),
	})

	bus.Subscribe("push.incident.notification", events.HandlerFunc(func(ctx context.Context, e events.Event) error {
		n := e.(events.IncidentNotificationReceived)
		log.Info("incident notification", "incident_id", n.IncidentID, "title", n.Title)
		return nil
	}))

	// ========================================================================
	// Actions
	// ========================================================================

	switch {
	case *pushToken != "":
		registrar.Register(*pushToken)

	case *showID > 0:
		showIncident(ctx, repo, images, pipeline, *showID, *withImage)

	case *updateID > 0:
		if *newStatus == "" {
			fmt.Fprintln(os.Stderr, "-update requires -to <status>")
			os.Exit(2)
		}
		if repo.UpdateStatus(ctx, *updateID, *newStatus, *note) {
			fmt.Printf("incident %d updated to %s\n", *updateID, *newStatus)
			pipeline.AddEvent("UpdateIncidentStatus", map[string]string{
				"incidentId": strconv.Itoa(*updateID),
				"status":     *newStatus,
			})
		} else {
			fmt.Fprintln(os.Stderr, repo.Message())
		}

	default:
		listIncidents(ctx, repo, pipeline, *contact, *technician, *status)
	}

	shutdown(ctx, log, pipeline, pool, bus)
}

func listIncidents(ctx context.Context, repo *incidents.Repository, pipeline *analytics.Pipeline, contact, technician, status string) {
	list, err := repo.Query(ctx, contact, technician)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	pipeline.AddEvent("QueryIncidents", map[string]string{"technician": technician, "contact": contact})

	if status != "" {
		repo.FilterByStatus(status)
		list = repo.Displayed()
	}
	if repo.HasMessage() {
		fmt.Fprintln(os.Stderr, repo.Message())
	}
	for _, inc := range list {
		fmt.Printf("%-6d %-12s %-8s %-30s %s\n", inc.ID, inc.Status, inc.Priority, inc.Title, inc.CustomerName)
	}
}

func showIncident(ctx context.Context, repo *incidents.Repository, images *storage.Images, pipeline *analytics.Pipeline, id int, withImage bool) {
	inc := repo.GetByID(ctx, id)
	if inc == nil {
		fmt.Fprintln(os.Stderr, repo.Message())
		return
	}
	pipeline.AddEvent("ShowIncident", map[string]string{"incidentId": strconv.Itoa(id)})

	fmt.Printf("#%d %s\n", inc.ID, inc.Title)
	fmt.Printf("status: %s  priority: %s (%s)\n", inc.Status, inc.Priority, inc.PriorityImageKey())
	fmt.Printf("created: %s  drive time: %s\n", inc.CreatedOnText, inc.DrivingTime)
	fmt.Printf("contact: %s, %s, %s %s\n", inc.CustomerName, inc.Street, inc.City, inc.PostalCode)
	for _, item := range inc.Notes {
		fmt.Printf("note %d: %s\n", item.Index, item.Message)
	}
	if withImage {
		encoded := images.ImageForLink(ctx, inc.RemoteImageLink)
		fmt.Printf("photo (base64, %d bytes)\n", len(encoded))
	}
}

func shutdown(ctx context.Context, log *logger.Logger, pipeline *analytics.Pipeline, pool *tasks.Pool, bus *events.InMemoryBus) {
	drainCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 10*time.Second)
	defer cancel()

	if err := pipeline.Shutdown(drainCtx); err != nil {
		log.Warn("analytics pipeline did not drain", "error", err)
	}
	if err := pool.Shutdown(drainCtx); err != nil {
		log.Warn("background pool did not drain", "error", err)
	}
	bus.Wait()
	log.Info("technician client stopped")
}
