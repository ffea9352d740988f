package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/finbridge/withdrawal-core/pkg/alerts"
	"github.com/finbridge/withdrawal-core/pkg/handlers"
	"github.com/finbridge/withdrawal-core/pkg/handlers/ledger"
	"github.com/finbridge/withdrawal-core/pkg/handlers/orders"
	"github.com/finbridge/withdrawal-core/pkg/handlers/wallets"
	"github.com/finbridge/withdrawal-core/pkg/middleware"
	"github.com/finbridge/withdrawal-core/pkg/processors"
	dydbstore "github.com/finbridge/withdrawal-core/pkg/storage/dynamodb"
	"github.com/finbridge/withdrawal-core/pkg/websockets"
	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables from .env file
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// AWS Session
	cfg, err := config.LoadDefaultConfig(context.TODO())
	if err != nil {
		log.Fatalf("unable to load SDK config, %v", err)
	}

	dbClient := dynamodb.NewFromConfig(cfg)
	ordersTable := os.Getenv("DYNAMODB_ORDERS_TABLE_NAME")
	walletsTable := os.Getenv("DYNAMODB_WALLETS_TABLE_NAME")
	ledgerTable := os.Getenv("DYNAMODB_LEDGER_TABLE_NAME")
	connectionsTable := os.Getenv("DYNAMODB_CONNECTIONS_TABLE_NAME")

	if ordersTable == "" || walletsTable == "" || ledgerTable == "" {
		log.Fatal("One or more DynamoDB table name environment variables are not set")
	}

	store := dydbstore.New(dbClient, ordersTable, walletsTable, ledgerTable, connectionsTable)

	// Reconciliation alerts go to SQS when a queue is configured.
	var alertPublisher alerts.Publisher = &alerts.NoOpPublisher{}
	if queueURL := os.Getenv("RECONCILIATION_QUEUE_URL"); queueURL != "" {
		alertPublisher = alerts.NewSQSPublisher(sqs.NewFromConfig(cfg), queueURL)
	}

	// Order and wallet updates are pushed to connected admin consoles when
	// the websocket API endpoint is configured.
	var wsPublisher websockets.Publisher = &websockets.NoOpPublisher{}
	if wsEndpoint := os.Getenv("WEBSOCKET_API_ENDPOINT"); wsEndpoint != "" {
		wsPublisher, err = websockets.NewPublisher(store, store, wsEndpoint)
		if err != nil {
			log.Fatalf("failed to create websocket publisher: %v", err)
		}
	}

	auditProcessor := processors.NewAuditProcessor(store, store, alertPublisher, wsPublisher)
	payoutProcessor := processors.NewPayoutProcessor(store, store, alertPublisher, wsPublisher)
	batchCoordinator := processors.NewBatchCoordinator(auditProcessor)

	ordersHandler := orders.NewOrdersHandler(store, auditProcessor, batchCoordinator, payoutProcessor)
	walletsHandler := wallets.NewWalletsHandler(store, wsPublisher)
	ledgerHandler := ledger.NewLedgerHandler(store)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	router := chi.NewRouter()
	router.Use(middleware.NewStructuredLogger(logger))
	router.Mount("/", handlers.NewRouter(ordersHandler, walletsHandler, ledgerHandler))

	port := os.Getenv("HTTP_PORT")
	if port == "" {
		port = "8080" // Default port if not specified
	}

	log.Printf("Starting server on port %s", port)

	err = http.ListenAndServe(":"+port, router)
	if err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
