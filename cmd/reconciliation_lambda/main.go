package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/finbridge/withdrawal-core/pkg/alerts"
	"github.com/finbridge/withdrawal-core/pkg/storage"
	dydbstore "github.com/finbridge/withdrawal-core/pkg/storage/dynamodb"
	"github.com/joho/godotenv"
)

var store storage.OrderStore
var alertPublisher alerts.Publisher

const stuckOrderThreshold = 30 * time.Minute

func init() {
	// Load environment variables for local testing.
	godotenv.Load()

	cfg, err := config.LoadDefaultConfig(context.TODO())
	if err != nil {
		log.Fatalf("unable to load SDK config, %v", err)
	}

	dbClient := dynamodb.NewFromConfig(cfg)
	sqsClient := sqs.NewFromConfig(cfg)

	queueURL := os.Getenv("RECONCILIATION_QUEUE_URL")
	if queueURL == "" {
		log.Fatal("RECONCILIATION_QUEUE_URL environment variable not set")
	}
	alertPublisher = alerts.NewSQSPublisher(sqsClient, queueURL)

	ordersTable := os.Getenv("DYNAMODB_ORDERS_TABLE_NAME")
	walletsTable := os.Getenv("DYNAMODB_WALLETS_TABLE_NAME")
	ledgerTable := os.Getenv("DYNAMODB_LEDGER_TABLE_NAME")

	store = dydbstore.New(dbClient, ordersTable, walletsTable, ledgerTable, "")
}

// HandleRequest is triggered by an EventBridge Schedule. It reports approved
// orders that have sat without a payout outcome for longer than the
// threshold, so operations staff can reconcile them against the payment rail.
func HandleRequest(ctx context.Context) error {
	log.Println("Starting reconciliation scan for stuck orders...")

	stuckOrders, err := store.GetStuckOrders(ctx, stuckOrderThreshold)
	if err != nil {
		log.Printf("ERROR: failed to get stuck orders: %v", err)
		return err
	}

	if len(stuckOrders) == 0 {
		log.Println("No stuck orders found.")
		return nil
	}

	log.Printf("Found %d stuck orders. Reporting them...", len(stuckOrders))

	for _, order := range stuckOrders {
		alert := &alerts.ReconciliationAlert{
			OrderId:  order.Id,
			UserId:   order.UserId,
			Stage:    alerts.StageStuckOrder,
			Detail:   "approved order without payout outcome past threshold",
			RaisedAt: time.Now(),
		}
		if err := alertPublisher.PublishAlert(ctx, alert); err != nil {
			log.Printf("ERROR: failed to report stuck order %s: %v", order.Id, err)
			// Continue to the next order, don't let one failure stop the whole scan.
			continue
		}
		log.Printf("Reported stuck order %s", order.Id)
	}

	log.Println("Reconciliation scan finished.")
	return nil
}

func main() {
	lambda.Start(HandleRequest)
}
