package main

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"os"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/finbridge/withdrawal-core/pkg/alerts"
	"github.com/finbridge/withdrawal-core/pkg/lifecycle"
	"github.com/finbridge/withdrawal-core/pkg/processors"
	dydbstore "github.com/finbridge/withdrawal-core/pkg/storage/dynamodb"
	"github.com/finbridge/withdrawal-core/pkg/websockets"
	"github.com/joho/godotenv"
)

// payoutCallback is the message the payment rail posts after executing a
// payout. Only the outcome is recorded here; the rail itself stays external.
type payoutCallback struct {
	OrderId        string `json:"order_id"`
	Outcome        string `json:"outcome"` // "success" or "failed"
	ChannelOrderNo string `json:"channel_order_no,omitempty"`
	FailureReason  string `json:"failure_reason,omitempty"`
}

// channelActor identifies the payment rail in the order's actor trail.
const channelActor = "payment-channel"

// newHandler returns the SQS event handler recording payout outcomes.
func newHandler(payoutProcessor *processors.PayoutProcessor) func(ctx context.Context, sqsEvent events.SQSEvent) error {
	return func(ctx context.Context, sqsEvent events.SQSEvent) error {
		for _, message := range sqsEvent.Records {
			log.Printf("Processing message %s", message.MessageId)

			var callback payoutCallback
			if err := json.Unmarshal([]byte(message.Body), &callback); err != nil {
				// Redelivery cannot repair a malformed body; drop the message
				// instead of looping on it.
				log.Printf("ERROR: dropping malformed payout callback in SQS message %s: %v", message.MessageId, err)
				continue
			}

			log.Printf("Recording payout outcome %q for order %s", callback.Outcome, callback.OrderId)

			_, err := payoutProcessor.MarkPayout(ctx, callback.OrderId, processors.PayoutAction(callback.Outcome), callback.ChannelOrderNo, callback.FailureReason, channelActor)
			if err != nil {
				switch {
				case errors.Is(err, lifecycle.ErrTerminalState):
					// A redelivered message finds the order already terminal.
					// The outcome was recorded on a previous attempt.
					log.Printf("Order %s already terminal, skipping redelivered message %s", callback.OrderId, message.MessageId)
					continue
				case errors.Is(err, lifecycle.ErrInvalidTransition),
					errors.Is(err, processors.ErrMissingChannelRef),
					errors.Is(err, processors.ErrMissingFailureReason),
					errors.Is(err, processors.ErrUnknownAction):
					// The callback itself is unprocessable; redelivery would
					// fail the same way every time.
					log.Printf("ERROR: dropping unprocessable payout callback for order %s (message %s): %v", callback.OrderId, message.MessageId, err)
					continue
				}
				log.Printf("ERROR: failed to record payout outcome for order %s: %v", callback.OrderId, err)
				// Returning an error makes SQS redeliver the message; persistent
				// failures end up on the DLQ.
				return err
			}

			log.Printf("Successfully recorded payout outcome for order %s", callback.OrderId)
		}

		return nil
	}
}

func main() {
	// Load environment variables from .env file (useful for local testing).
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.LoadDefaultConfig(context.TODO())
	if err != nil {
		log.Fatalf("unable to load SDK config, %v", err)
	}

	dbClient := dynamodb.NewFromConfig(cfg)
	ordersTable := os.Getenv("DYNAMODB_ORDERS_TABLE_NAME")
	walletsTable := os.Getenv("DYNAMODB_WALLETS_TABLE_NAME")
	ledgerTable := os.Getenv("DYNAMODB_LEDGER_TABLE_NAME")

	if ordersTable == "" || walletsTable == "" || ledgerTable == "" {
		log.Fatal("One or more DynamoDB table name environment variables are not set")
	}

	store := dydbstore.New(dbClient, ordersTable, walletsTable, ledgerTable, "")

	var alertPublisher alerts.Publisher = &alerts.NoOpPublisher{}
	if queueURL := os.Getenv("RECONCILIATION_QUEUE_URL"); queueURL != "" {
		alertPublisher = alerts.NewSQSPublisher(sqs.NewFromConfig(cfg), queueURL)
	}

	payoutProcessor := processors.NewPayoutProcessor(store, store, alertPublisher, &websockets.NoOpPublisher{})

	lambda.Start(newHandler(payoutProcessor))
}
