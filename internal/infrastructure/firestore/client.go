// Package firestore implementa los adaptadores de persistencia sobre
// Google Cloud Firestore para los puertos del dominio.
package firestore

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/option"
)

// Client envuelve el cliente de Firestore y su configuración.
type Client struct {
	FS        *firestore.Client
	ProjectID string
}

// NewClient inicializa el cliente de Firestore. Con credentialsFile vacío se
// usan las Application Default Credentials del entorno.
func NewClient(ctx context.Context, projectID, credentialsFile string) (*Client, error) {
	var (
		fs  *firestore.Client
		err error
	)
	if credentialsFile != "" {
		fs, err = firestore.NewClient(ctx, projectID, option.WithCredentialsFile(credentialsFile))
	} else {
		fs, err = firestore.NewClient(ctx, projectID)
	}
	if err != nil {
		return nil, fmt.Errorf("crear cliente firestore: %w", err)
	}
	return &Client{FS: fs, ProjectID: projectID}, nil
}

// Ping verifica la conexión. Firestore no tiene un ping nativo, así que se
// intenta una lectura mínima.
func (c *Client) Ping(ctx context.Context) error {
	if c == nil || c.FS == nil {
		return fmt.Errorf("cliente firestore nil")
	}
	if _, err := c.FS.Collections(ctx).GetAll(); err != nil {
		return fmt.Errorf("ping firestore: %w", err)
	}
	return nil
}

// Close cierra el cliente.
func (c *Client) Close() error {
	if c == nil || c.FS == nil {
		return nil
	}
	return c.FS.Close()
}
