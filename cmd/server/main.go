package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"cloud.google.com/go/firestore"
	"github.com/castlemilk/budgetbot/internal/bot"
	"github.com/castlemilk/budgetbot/internal/config"
	"github.com/castlemilk/budgetbot/internal/ledger"
	"github.com/castlemilk/budgetbot/internal/session"
	"github.com/castlemilk/budgetbot/internal/store"
	"github.com/castlemilk/budgetbot/internal/webhook"
	"github.com/rs/cors"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"
	"google.golang.org/api/option"
)

func main() {
	cfg := config.Load()
	ctx := context.Background()

	var opts []option.ClientOption
	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}

	var storeImpl store.Store
	var decorator store.Decorator

	if cfg.UseMemoryStore {
		log.Println("Using in-memory ledger store for local development")
		storeImpl = store.NewMemoryStore()
	} else {
		sheetsStore, err := store.NewSheetsStore(ctx, cfg.DriveFolderID, opts...)
		if err != nil {
			log.Fatalf("Failed to create Sheets store: %v", err)
		}
		storeImpl = sheetsStore
		decorator = sheetsStore
	}

	var sessions session.Directory
	switch cfg.SessionBackend {
	case "firestore":
		if cfg.ProjectID == "" {
			log.Fatalf("GOOGLE_CLOUD_PROJECT is required for the firestore session backend")
		}
		firestoreClient, err := firestore.NewClient(ctx, cfg.ProjectID, opts...)
		if err != nil {
			log.Fatalf("Failed to create Firestore client: %v", err)
		}
		defer firestoreClient.Close()
		sessions = session.NewCachedDirectory(session.NewFirestoreDirectory(firestoreClient))
	default:
		log.Println("Using in-memory session directory")
		sessions = session.NewMemoryDirectory()
	}

	resolver := ledger.NewResolver(storeImpl, decorator, sessions)
	dispatcher := bot.NewDispatcher(storeImpl, resolver, bot.WithCurrency(cfg.CurrencySymbol))

	var webhookOpts []webhook.Option
	if cfg.TwilioAuthToken != "" {
		webhookOpts = append(webhookOpts, webhook.WithSignatureValidation(cfg.TwilioAuthToken, cfg.PublicURL))
	} else {
		log.Println("⚠️  TWILIO_AUTH_TOKEN not set - webhook signatures are not verified")
	}

	mux := http.NewServeMux()
	mux.Handle("/whatsapp", webhook.NewHandler(dispatcher, webhookOpts...))

	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	var handler http.Handler = mux
	if len(cfg.AllowedOrigins) > 0 {
		c := cors.New(cors.Options{
			AllowedOrigins: cfg.AllowedOrigins,
			AllowedMethods: []string{
				http.MethodGet,
				http.MethodPost,
				http.MethodOptions,
			},
			AllowedHeaders: []string{
				"Accept",
				"Content-Type",
				"X-Twilio-Signature",
			},
		})
		handler = c.Handler(mux)
	}

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Port),
		Handler: h2c.NewHandler(handler, &http2.Server{}),
	}

	log.Printf("Starting server on port %s", cfg.Port)
	if err := srv.ListenAndServe(); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
