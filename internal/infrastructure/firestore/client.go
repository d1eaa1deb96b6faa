package firestore

import (
	"context"
	"fmt"
	"log"
	"os"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/option"
)

// FirestoreClient wraps the Firestore client backing the crawl cache.
type FirestoreClient struct {
	client *firestore.Client
}

// NewFirestoreClient builds a client for the given project. On Cloud Run the
// default service credentials are used; locally a credentials file is read
// from GOOGLE_APPLICATION_CREDENTIALS when present.
func NewFirestoreClient(ctx context.Context, projectID string) (*FirestoreClient, error) {
	var client *firestore.Client
	var err error

	isCloudRun := os.Getenv("K_SERVICE") != ""

	if isCloudRun {
		client, err = firestore.NewClient(ctx, projectID)
		if err != nil {
			return nil, fmt.Errorf("failed to create firestore client with default auth: %w", err)
		}
	} else {
		credentialsFile := os.Getenv("GOOGLE_APPLICATION_CREDENTIALS")
		if credentialsFile == "" {
			client, err = firestore.NewClient(ctx, projectID)
		} else if _, fileErr := os.Stat(credentialsFile); fileErr != nil {
			log.Printf("credentials file not found: %s, trying default authentication", credentialsFile)
			client, err = firestore.NewClient(ctx, projectID)
		} else {
			client, err = firestore.NewClient(ctx, projectID, option.WithCredentialsFile(credentialsFile))
		}
		if err != nil {
			return nil, fmt.Errorf("failed to create firestore client: %w", err)
		}
	}

	log.Printf("firestore client initialized for project %s", projectID)
	return &FirestoreClient{client: client}, nil
}

// Client returns the underlying Firestore client.
func (fc *FirestoreClient) Client() *firestore.Client {
	return fc.client
}

// Close closes the underlying client.
func (fc *FirestoreClient) Close() error {
	return fc.client.Close()
}
