package firebase

import (
	"context"
	"fmt"

	fs "cloud.google.com/go/firestore"
	fb "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"
)

// Clients bundles the Firebase services the admin backend talks to.
type Clients struct {
	Firestore *fs.Client
	Auth      *auth.Client
}

// NewClients initializes a Firebase app from a service account file. An empty
// credentials path falls back to application default credentials.
func NewClients(ctx context.Context, projectID, credentialsFile string) (*Clients, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}

	app, err := fb.NewApp(ctx, &fb.Config{ProjectID: projectID}, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize firebase app: %w", err)
	}

	firestoreClient, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize firestore: %w", err)
	}

	authClient, err := app.Auth(ctx)
	if err != nil {
		firestoreClient.Close()
		return nil, fmt.Errorf("failed to initialize firebase auth: %w", err)
	}

	return &Clients{Firestore: firestoreClient, Auth: authClient}, nil
}

func (c *Clients) Close() error {
	return c.Firestore.Close()
}
