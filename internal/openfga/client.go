// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package openfga

import (
	"context"
	"fmt"

	"github.com/openfga/go-sdk/client"
	"github.com/openfga/go-sdk/credentials"

	"github.com/canonical/studio-service/internal/logging"
	"github.com/canonical/studio-service/internal/monitoring"
	"github.com/canonical/studio-service/internal/tracing"
)

type Client struct {
	c       *client.OpenFgaClient
	modelID string

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (c *Client) Check(ctx context.Context, user, relation, object string, contextualTuples ...Tuple) (bool, error) {
	ctx, span := c.tracer.Start(ctx, "openfga.Client.Check")
	defer span.End()

	body := client.ClientCheckRequest{
		User:     user,
		Relation: relation,
		Object:   object,
	}

	if len(contextualTuples) > 0 {
		keys := make([]client.ClientContextualTupleKey, 0, len(contextualTuples))
		for _, t := range contextualTuples {
			keys = append(keys, t.toClientTupleKey())
		}
		body.ContextualTuples = keys
	}

	res, err := c.c.Check(ctx).Body(body).Execute()
	if err != nil {
		c.logger.Errorf("issues performing check operation: %s", err)
		c.setAvailability(0)
		return false, err
	}

	c.setAvailability(1)
	return res.GetAllowed(), nil
}

func (c *Client) WriteTuple(ctx context.Context, user, relation, object string) error {
	ctx, span := c.tracer.Start(ctx, "openfga.Client.WriteTuple")
	defer span.End()

	return c.WriteTuples(ctx, *NewTuple(user, relation, object))
}

func (c *Client) WriteTuples(ctx context.Context, tuples ...Tuple) error {
	ctx, span := c.tracer.Start(ctx, "openfga.Client.WriteTuples")
	defer span.End()

	body := make(client.ClientWriteTuplesBody, 0, len(tuples))
	for _, t := range tuples {
		body = append(body, t.toClientTupleKey())
	}

	if _, err := c.c.WriteTuples(ctx).Body(body).Execute(); err != nil {
		c.logger.Errorf("issues performing write operation: %s", err)
		return fmt.Errorf("failed to write tuples: %w", err)
	}

	return nil
}

func (c *Client) DeleteTuple(ctx context.Context, user, relation, object string) error {
	ctx, span := c.tracer.Start(ctx, "openfga.Client.DeleteTuple")
	defer span.End()

	body := client.ClientDeleteTuplesBody{NewTuple(user, relation, object).toClientTupleKeyWithoutCondition()}

	if _, err := c.c.DeleteTuples(ctx).Body(body).Execute(); err != nil {
		c.logger.Errorf("issues performing delete operation: %s", err)
		return fmt.Errorf("failed to delete tuple: %w", err)
	}

	return nil
}

// TypeRelations lists the relations the configured authorization model
// defines on objectType. The latest model is read when no model id is set.
func (c *Client) TypeRelations(ctx context.Context, objectType string) ([]string, error) {
	ctx, span := c.tracer.Start(ctx, "openfga.Client.TypeRelations")
	defer span.End()

	var (
		res *client.ClientReadAuthorizationModelResponse
		err error
	)

	if c.modelID == "" {
		res, err = c.c.ReadLatestAuthorizationModel(ctx).Execute()
	} else {
		res, err = c.c.ReadAuthorizationModel(ctx).Execute()
	}

	if err != nil {
		c.setAvailability(0)
		return nil, fmt.Errorf("failed to read authorization model: %w", err)
	}

	c.setAvailability(1)

	model := res.GetAuthorizationModel()
	for _, td := range model.GetTypeDefinitions() {
		if td.GetType() != objectType {
			continue
		}

		relations := make([]string, 0, len(td.GetRelations()))
		for name := range td.GetRelations() {
			relations = append(relations, name)
		}
		return relations, nil
	}

	return nil, nil
}

func (c *Client) setAvailability(v float64) {
	if err := c.monitor.SetDependencyAvailability(map[string]string{"component": "openfga"}, v); err != nil {
		c.logger.Debugf("failed to record openfga availability: %s", err)
	}
}

func NewClient(cfg *Config) (*Client, error) {
	c := new(Client)

	c.tracer = cfg.Tracer
	c.monitor = cfg.Monitor
	c.logger = cfg.Logger

	conf := &client.ClientConfiguration{
		ApiUrl:               cfg.ApiURL,
		StoreId:              cfg.StoreID,
		AuthorizationModelId: cfg.AuthorizationModelID,
		Debug:                cfg.Debug,
	}

	if cfg.ApiToken != "" {
		conf.Credentials = &credentials.Credentials{
			Method: credentials.CredentialsMethodApiToken,
			Config: &credentials.Config{
				ApiToken: cfg.ApiToken,
			},
		}
	}

	fga, err := client.NewSdkClient(conf)
	if err != nil {
		return nil, fmt.Errorf("failed to create openfga client: %w", err)
	}

	c.c = fga
	c.modelID = cfg.AuthorizationModelID

	return c, nil
}
