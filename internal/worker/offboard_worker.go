package worker

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/kingrain94/shop-rag-api/internal/api/dto"
	"github.com/kingrain94/shop-rag-api/internal/domain"
	"github.com/kingrain94/shop-rag-api/internal/metrics"
	"github.com/kingrain94/shop-rag-api/internal/repository"
	"github.com/kingrain94/shop-rag-api/internal/service/queue"
	"github.com/kingrain94/shop-rag-api/pkg/logger"
)

const (
	OutcomeArchived    = "archived"
	OutcomeAlreadyGone = "already_gone"
	OutcomeFailed      = "failed"
)

// MessageSource is the queue side of the worker, satisfied by *queue.SQSService.
type MessageSource interface {
	OffboardQueueURL() string
	ReceiveMessages(ctx context.Context, queueURL string, maxMessages int32, waitTimeSeconds int32) ([]queue.ReceivedMessage, error)
	DeleteMessage(ctx context.Context, queueURL string, receiptHandle *string) error
}

// ObjectStore is the subset of *s3.Client used for archives.
type ObjectStore interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// ErrTenantChanged means the tenant's catalog moved between the archive reads
// and the delete; the message is left on the queue so the next delivery
// archives a fresh snapshot.
var ErrTenantChanged = errors.New("tenant changed while archiving")

// TenantArchive is the JSON document written to S3 before a tenant is deleted.
type TenantArchive struct {
	Tenant     dto.TenantResponse     `json:"tenant"`
	ArchivedAt time.Time              `json:"archived_at"`
	Products   []dto.ProductResponse  `json:"products"`
	Documents  []dto.DocumentResponse `json:"documents"`
	ChunkCount int64                  `json:"chunk_count"`
}

// OffboardWorker consumes OFFBOARD messages: it archives the tenant's catalog
// to S3 and then deletes the tenant, cascading to all of its rows.
type OffboardWorker struct {
	source       MessageSource
	repository   repository.Repository
	store        ObjectStore
	bucket       string
	logger       *logger.Logger
	workerCount  int
	pollInterval time.Duration
	maxMessages  int32
	waitTime     int32
	shutdownChan chan struct{}
	waitGroup    sync.WaitGroup
	now          func() time.Time
}

func NewOffboardWorker(
	source MessageSource,
	repository repository.Repository,
	store ObjectStore,
	bucket string,
	logger *logger.Logger,
	workerCount int,
	pollInterval time.Duration,
) *OffboardWorker {
	return &OffboardWorker{
		source:       source,
		repository:   repository,
		store:        store,
		bucket:       bucket,
		logger:       logger,
		workerCount:  workerCount,
		pollInterval: pollInterval,
		maxMessages:  10,
		waitTime:     20, // long polling
		shutdownChan: make(chan struct{}),
		now:          time.Now,
	}
}

func (w *OffboardWorker) Start(ctx context.Context) {
	w.logger.Info("Starting offboard workers...", zap.Int("workers", w.workerCount))

	for i := range w.workerCount {
		w.waitGroup.Add(1)
		go w.runWorker(ctx, i)
	}
}

func (w *OffboardWorker) Stop() {
	w.logger.Info("Stopping offboard workers...")
	close(w.shutdownChan)
	w.waitGroup.Wait()
	w.logger.Info("All offboard workers stopped")
}

func (w *OffboardWorker) runWorker(ctx context.Context, workerID int) {
	defer w.waitGroup.Done()

	w.logger.Infof("Offboard worker %d started", workerID)

	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-w.shutdownChan:
			w.logger.Infof("Offboard worker %d shutting down", workerID)
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := w.processMessages(ctx); err != nil {
				w.logger.Errorf("Offboard worker %d failed to process messages: %v", workerID, err)
			}
		}
	}
}

func (w *OffboardWorker) processMessages(ctx context.Context) error {
	queueURL := w.source.OffboardQueueURL()

	messages, err := w.source.ReceiveMessages(ctx, queueURL, w.maxMessages, w.waitTime)
	if err != nil {
		return fmt.Errorf("failed to receive messages: %w", err)
	}

	for _, msg := range messages {
		if msg.DecodeErr != nil {
			w.logger.Warnf("Dropping undecodable message %s: %v", aws.ToString(msg.ReceiptHandle), msg.DecodeErr)
		} else if msg.Message.Type != queue.MessageTypeOffboard {
			w.logger.Warn("Dropping message of unknown type", zap.String("type", string(msg.Message.Type)))
		} else if err := w.offboard(ctx, msg.Message.TenantID); err != nil {
			metrics.TenantsOffboardedTotal.WithLabelValues(OutcomeFailed).Inc()
			w.logger.Error("Failed to offboard tenant", err, zap.String("tenant_id", msg.Message.TenantID.String()))
			continue
		}

		// Only delete the message if processing was successful
		if err := w.source.DeleteMessage(ctx, queueURL, msg.ReceiptHandle); err != nil {
			w.logger.Error("Failed to delete message", err)
		}
	}

	return nil
}

// offboard is idempotent: a tenant that no longer exists counts as done, so
// a redelivered message after a lost delete is harmless.
func (w *OffboardWorker) offboard(ctx context.Context, tenantID uuid.UUID) error {
	tenant, err := w.repository.Tenant().GetByID(ctx, tenantID)
	if errors.Is(err, domain.ErrNotFound) {
		metrics.TenantsOffboardedTotal.WithLabelValues(OutcomeAlreadyGone).Inc()
		w.logger.Info("Tenant already removed", zap.String("tenant_id", tenantID.String()))
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to load tenant %s: %w", tenantID, err)
	}

	archive, err := w.buildArchive(ctx, tenant)
	if err != nil {
		return err
	}

	key, err := w.upload(ctx, archive)
	if err != nil {
		return err
	}

	if err := w.verifyUnchanged(ctx, archive); err != nil {
		return err
	}

	if err := w.repository.Tenant().Delete(ctx, tenantID); err != nil && !errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("failed to delete tenant %s: %w", tenantID, err)
	}

	metrics.TenantsOffboardedTotal.WithLabelValues(OutcomeArchived).Inc()
	w.logger.Info("Tenant offboarded",
		zap.String("tenant_id", tenantID.String()),
		zap.String("archive", fmt.Sprintf("s3://%s/%s", w.bucket, key)),
		zap.Int("products", len(archive.Products)),
		zap.Int("documents", len(archive.Documents)))
	return nil
}

func (w *OffboardWorker) buildArchive(ctx context.Context, tenant *domain.Tenant) (*TenantArchive, error) {
	products, err := w.repository.Product().List(ctx, domain.ProductFilter{TenantID: tenant.ID})
	if err != nil {
		return nil, fmt.Errorf("failed to export products: %w", err)
	}

	documents, err := w.repository.Document().List(ctx, domain.DocumentFilter{TenantID: tenant.ID})
	if err != nil {
		return nil, fmt.Errorf("failed to export documents: %w", err)
	}

	chunkCount, err := w.repository.RagChunk().CountByTenant(ctx, tenant.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to count chunks: %w", err)
	}

	archive := &TenantArchive{
		Tenant:     dto.FromTenant(tenant),
		ArchivedAt: w.now().UTC(),
		Products:   make([]dto.ProductResponse, len(products)),
		Documents:  make([]dto.DocumentResponse, len(documents)),
		ChunkCount: chunkCount,
	}
	for i := range products {
		archive.Products[i] = dto.FromProduct(&products[i])
	}
	for i := range documents {
		archive.Documents[i] = dto.FromDocument(&documents[i])
	}

	return archive, nil
}

// verifyUnchanged recounts products and chunks after the upload. The archive
// reads are not one snapshot, so rows added or removed in between would
// otherwise be deleted without being archived. In-place edits do not change
// the counts and are not detected.
func (w *OffboardWorker) verifyUnchanged(ctx context.Context, archive *TenantArchive) error {
	tenantID := archive.Tenant.ID

	products, err := w.repository.Product().CountByTenant(ctx, tenantID)
	if err != nil {
		return fmt.Errorf("failed to recount products: %w", err)
	}
	chunks, err := w.repository.RagChunk().CountByTenant(ctx, tenantID)
	if err != nil {
		return fmt.Errorf("failed to recount chunks: %w", err)
	}

	if products != int64(len(archive.Products)) || chunks != archive.ChunkCount {
		return fmt.Errorf("%w: %s (products %d->%d, chunks %d->%d)", ErrTenantChanged, tenantID,
			len(archive.Products), products, archive.ChunkCount, chunks)
	}
	return nil
}

func (w *OffboardWorker) upload(ctx context.Context, archive *TenantArchive) (string, error) {
	key := ArchiveKey(archive.Tenant.ID, archive.ArchivedAt)

	body, err := json.MarshalIndent(archive, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal archive: %w", err)
	}

	_, err = w.store.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(w.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String("application/json"),
		Metadata: map[string]string{
			"tenant-id":      archive.Tenant.ID.String(),
			"archived-at":    archive.ArchivedAt.Format(time.RFC3339),
			"product-count":  strconv.Itoa(len(archive.Products)),
			"document-count": strconv.Itoa(len(archive.Documents)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload archive to S3: %w", err)
	}

	return key, nil
}

// ArchiveKey is tenants/<id>/archive_<timestamp>.json.
func ArchiveKey(tenantID uuid.UUID, at time.Time) string {
	return fmt.Sprintf("tenants/%s/archive_%s.json", tenantID, at.UTC().Format("2006-01-02_15-04-05"))
}
