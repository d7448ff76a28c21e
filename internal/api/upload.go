package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/avictorio/fieldparts/pkg/enums"
	pkgerrors "github.com/avictorio/fieldparts/pkg/errors"
)

// UploadPhotoParams describes one photo attachment for a ticket.
type UploadPhotoParams struct {
	Type          enums.PhotoType
	MaintenanceID int64
	FileName      string
	Photo         io.Reader
}

// UploadPhoto posts a photo as multipart form data with the fields the
// backend expects: types, maintenance_id and the binary photo part.
func (c *Client) UploadPhoto(ctx context.Context, params UploadPhotoParams) error {
	if !params.Type.IsValid() {
		return pkgerrors.New(pkgerrors.CodeValidation, "photo type is invalid")
	}
	if params.MaintenanceID <= 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "maintenance id is required")
	}
	if params.Photo == nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "photo content is required")
	}
	fileName := strings.TrimSpace(params.FileName)
	if fileName == "" {
		fileName = "photo.jpg"
	}

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	if err := writer.WriteField("types", params.Type.String()); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeNetwork, err, "encode photo upload")
	}
	if err := writer.WriteField("maintenance_id", strconv.FormatInt(params.MaintenanceID, 10)); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeNetwork, err, "encode photo upload")
	}
	part, err := writer.CreateFormFile("photo", fileName)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeNetwork, err, "encode photo upload")
	}
	if _, err := io.Copy(part, params.Photo); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeNetwork, err, "read photo content")
	}
	if err := writer.Close(); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeNetwork, err, "finalize photo upload")
	}

	const op = "upload_photo"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.buildURL("maintenances/photos"), &body)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeNetwork, err, "build photo upload request")
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	c.decorate(req, true, op)

	c.log(ctx, "request", op, map[string]any{"maintenance_id": params.MaintenanceID, "types": params.Type.String()})
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log(ctx, "error", op, map[string]any{"error": err.Error()})
		return pkgerrors.Wrap(pkgerrors.CodeNetwork, err, "")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.errorFromResponse(ctx, op, resp)
	}

	raw, _ := io.ReadAll(io.LimitReader(resp.Body, responseBodyReadLimit))
	var env envelope
	_ = json.Unmarshal(raw, &env)
	c.log(ctx, "response", op, map[string]any{"status": fmt.Sprint(resp.StatusCode)})
	return nil
}
