package api

import (
	"context"
	"net/url"
	"strings"

	"github.com/avictorio/fieldparts/internal/parts"
	pkgerrors "github.com/avictorio/fieldparts/pkg/errors"
)

// SearchParts queries the catalog for parts matching the query string.
func (c *Client) SearchParts(ctx context.Context, query string) ([]parts.InventoryPart, error) {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "search query is required")
	}
	var result []parts.InventoryPart
	path := "parts/search?query=" + url.QueryEscape(trimmed)
	if err := c.get(ctx, "search_parts", path, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// ListInventory fetches the whole catalog.
func (c *Client) ListInventory(ctx context.Context) ([]parts.InventoryPart, error) {
	var result []parts.InventoryPart
	if err := c.get(ctx, "list_inventory", "parts", &result); err != nil {
		return nil, err
	}
	return result, nil
}

// ListWallet fetches the caller's part request records.
func (c *Client) ListWallet(ctx context.Context) ([]parts.PartRequestRecord, error) {
	var result []parts.PartRequestRecord
	if err := c.get(ctx, "list_wallet", "parts/wallet", &result); err != nil {
		return nil, err
	}
	return result, nil
}

// RequestParts submits a requisition and returns the created records.
func (c *Client) RequestParts(ctx context.Context, lines []parts.RequestLine) ([]parts.PartRequestRecord, error) {
	var created []parts.PartRequestRecord
	if err := c.post(ctx, "request_parts", "parts/request", lines, &created); err != nil {
		return nil, err
	}
	return created, nil
}

// ApproveParts submits an approval batch.
func (c *Client) ApproveParts(ctx context.Context, decisions []parts.ApproveDecision) error {
	return c.post(ctx, "approve_parts", "parts/approve", decisions, nil)
}

// InstallParts submits an installation batch.
func (c *Client) InstallParts(ctx context.Context, orders []parts.InstallOrder) error {
	return c.post(ctx, "install_parts", "parts/install", orders, nil)
}

// RemoveParts submits a removal batch against inventory.
func (c *Client) RemoveParts(ctx context.Context, orders []parts.RemoveOrder) error {
	return c.post(ctx, "remove_parts", "parts/remove", orders, nil)
}

// AssignParts hands parts to another engineer on the ticket.
func (c *Client) AssignParts(ctx context.Context, lines []parts.AssignLine) error {
	return c.post(ctx, "assign_parts", "parts/assign", lines, nil)
}
