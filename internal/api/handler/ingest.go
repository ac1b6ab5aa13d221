package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/tailwatch/tailwatch/internal/api/response"
	"github.com/tailwatch/tailwatch/internal/pipeline"
	"github.com/tailwatch/tailwatch/pkg/models"
)

const maxBatchSize = 1000

// BatchProcessor defines the interface the ingest handler depends on.
type BatchProcessor interface {
	ProcessBatch(ctx context.Context, events []models.TailEvent) pipeline.BatchResult
}

// NewIngestHandler returns an http.HandlerFunc for POST /api/v1/events.
// The batch is processed synchronously; the response reports what the
// pipeline did with each class of event.
func NewIngestHandler(p BatchProcessor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Events []models.TailEvent `json:"events"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.Error(w, http.StatusBadRequest, "INVALID_REQUEST", "Invalid JSON body", nil)
			return
		}

		if len(req.Events) > maxBatchSize {
			response.Error(w, http.StatusBadRequest, "BATCH_TOO_LARGE",
				"Batch exceeds the maximum of 1000 events", nil)
			return
		}

		batchID := uuid.New()
		slog.Info("batch received", "batch_id", batchID, "events", len(req.Events))

		result := p.ProcessBatch(r.Context(), req.Events)

		response.Accepted(w, ingestResponse{
			BatchID: batchID.String(),
			Result:  result,
		})
	}
}

type ingestResponse struct {
	BatchID string               `json:"batch_id"`
	Result  pipeline.BatchResult `json:"result"`
}
