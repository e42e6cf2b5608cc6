package worker

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/kingrain94/shop-rag-api/internal/config"
	"github.com/kingrain94/shop-rag-api/internal/domain"
	"github.com/kingrain94/shop-rag-api/internal/mocks"
	"github.com/kingrain94/shop-rag-api/internal/service/queue"
	"github.com/kingrain94/shop-rag-api/pkg/logger"
)

const testQueueURL = "http://localhost:4566/000000000000/offboard"

type fakeSQS struct {
	messages []types.Message
	deleted  []string
}

func (f *fakeSQS) SendMessage(context.Context, *sqs.SendMessageInput, ...func(*sqs.Options)) (*sqs.SendMessageOutput, error) {
	return &sqs.SendMessageOutput{}, nil
}

func (f *fakeSQS) ReceiveMessage(context.Context, *sqs.ReceiveMessageInput, ...func(*sqs.Options)) (*sqs.ReceiveMessageOutput, error) {
	return &sqs.ReceiveMessageOutput{Messages: f.messages}, nil
}

func (f *fakeSQS) DeleteMessage(_ context.Context, in *sqs.DeleteMessageInput, _ ...func(*sqs.Options)) (*sqs.DeleteMessageOutput, error) {
	f.deleted = append(f.deleted, aws.ToString(in.ReceiptHandle))
	return &sqs.DeleteMessageOutput{}, nil
}

type fakeStore struct {
	keys   []string
	bodies [][]byte
	err    error
}

func (f *fakeStore) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	body, _ := io.ReadAll(in.Body)
	f.keys = append(f.keys, aws.ToString(in.Key))
	f.bodies = append(f.bodies, body)
	return &s3.PutObjectOutput{}, nil
}

type OffboardWorkerTestSuite struct {
	suite.Suite
	sqs       *fakeSQS
	store     *fakeStore
	repo      *mocks.Repository
	tenants   *mocks.TenantRepository
	products  *mocks.ProductRepository
	documents *mocks.DocumentRepository
	chunks    *mocks.RagChunkRepository
	worker    *OffboardWorker
	now       time.Time
}

func TestOffboardWorker(t *testing.T) {
	suite.Run(t, new(OffboardWorkerTestSuite))
}

func (s *OffboardWorkerTestSuite) SetupTest() {
	s.sqs = &fakeSQS{}
	s.store = &fakeStore{}
	s.repo = mocks.NewRepository(s.T())
	s.tenants = mocks.NewTenantRepository(s.T())
	s.products = mocks.NewProductRepository(s.T())
	s.documents = mocks.NewDocumentRepository(s.T())
	s.chunks = mocks.NewRagChunkRepository(s.T())

	s.repo.On("Tenant").Return(s.tenants).Maybe()
	s.repo.On("Product").Return(s.products).Maybe()
	s.repo.On("Document").Return(s.documents).Maybe()
	s.repo.On("RagChunk").Return(s.chunks).Maybe()

	source := queue.NewSQSService(s.sqs, &config.SQSConfig{OffboardQueueURL: testQueueURL})
	s.worker = NewOffboardWorker(source, s.repo, s.store, "archives", logger.NewNop(), 1, time.Second)
	s.now = time.Date(2025, 7, 17, 21, 20, 48, 0, time.UTC)
	s.worker.now = func() time.Time { return s.now }
}

func (s *OffboardWorkerTestSuite) enqueue(msgType queue.MessageType, tenantID uuid.UUID, receipt string) {
	body, err := json.Marshal(queue.Message{Type: msgType, TenantID: tenantID, Timestamp: s.now})
	s.Require().NoError(err)
	s.sqs.messages = append(s.sqs.messages, types.Message{
		Body:          aws.String(string(body)),
		ReceiptHandle: aws.String(receipt),
	})
}

func (s *OffboardWorkerTestSuite) TestArchivesThenDeletes() {
	tenantID := uuid.New()
	docID := uuid.New()
	s.enqueue(queue.MessageTypeOffboard, tenantID, "rh-1")

	s.tenants.On("GetByID", mock.Anything, tenantID).
		Return(&domain.Tenant{ID: tenantID, Name: "Acme", PublicToken: "secret-token"}, nil)
	s.products.On("List", mock.Anything, domain.ProductFilter{TenantID: tenantID}).
		Return([]domain.Product{{ID: uuid.New(), TenantID: tenantID, SKU: "TENT-2P", Name: "Tent"}}, nil)
	s.documents.On("List", mock.Anything, domain.DocumentFilter{TenantID: tenantID}).
		Return([]domain.Document{{ID: docID, TenantID: tenantID, Title: "Shipping", Content: "Fast"}}, nil)
	s.chunks.On("CountByTenant", mock.Anything, tenantID).Return(int64(2), nil)
	s.products.On("CountByTenant", mock.Anything, tenantID).Return(int64(1), nil)
	s.tenants.On("Delete", mock.Anything, tenantID).Return(nil)

	s.Require().NoError(s.worker.processMessages(context.Background()))

	s.Require().Len(s.store.keys, 1)
	s.Equal("tenants/"+tenantID.String()+"/archive_2025-07-17_21-20-48.json", s.store.keys[0])
	s.NotContains(string(s.store.bodies[0]), "secret-token")

	var archive TenantArchive
	s.Require().NoError(json.Unmarshal(s.store.bodies[0], &archive))
	s.Equal(tenantID, archive.Tenant.ID)
	s.Len(archive.Products, 1)
	s.Require().Len(archive.Documents, 1)
	s.Equal(docID, archive.Documents[0].ID)
	s.EqualValues(2, archive.ChunkCount)

	s.Equal([]string{"rh-1"}, s.sqs.deleted)
}

func (s *OffboardWorkerTestSuite) TestMissingTenantCountsAsDone() {
	tenantID := uuid.New()
	s.enqueue(queue.MessageTypeOffboard, tenantID, "rh-1")
	s.tenants.On("GetByID", mock.Anything, tenantID).Return(nil, domain.ErrNotFound)

	s.Require().NoError(s.worker.processMessages(context.Background()))

	s.Empty(s.store.keys)
	s.Equal([]string{"rh-1"}, s.sqs.deleted)
}

func (s *OffboardWorkerTestSuite) TestUploadFailureKeepsMessageAndTenant() {
	tenantID := uuid.New()
	s.enqueue(queue.MessageTypeOffboard, tenantID, "rh-1")
	s.store.err = errors.New("access denied")

	s.tenants.On("GetByID", mock.Anything, tenantID).Return(&domain.Tenant{ID: tenantID, Name: "Acme"}, nil)
	s.products.On("List", mock.Anything, mock.Anything).Return([]domain.Product{}, nil)
	s.documents.On("List", mock.Anything, mock.Anything).Return([]domain.Document{}, nil)
	s.chunks.On("CountByTenant", mock.Anything, tenantID).Return(int64(0), nil)

	s.Require().NoError(s.worker.processMessages(context.Background()))

	s.tenants.AssertNotCalled(s.T(), "Delete", mock.Anything, mock.Anything)
	s.Empty(s.sqs.deleted)
}

func (s *OffboardWorkerTestSuite) TestCatalogChangedDuringArchiveKeepsTenant() {
	tenantID := uuid.New()
	s.enqueue(queue.MessageTypeOffboard, tenantID, "rh-1")

	s.tenants.On("GetByID", mock.Anything, tenantID).Return(&domain.Tenant{ID: tenantID, Name: "Acme"}, nil)
	s.products.On("List", mock.Anything, mock.Anything).Return([]domain.Product{}, nil)
	s.documents.On("List", mock.Anything, mock.Anything).Return([]domain.Document{}, nil)
	s.chunks.On("CountByTenant", mock.Anything, tenantID).Return(int64(0), nil)
	// a product created after the list was read
	s.products.On("CountByTenant", mock.Anything, tenantID).Return(int64(1), nil)

	err := s.worker.offboard(context.Background(), tenantID)

	s.ErrorIs(err, ErrTenantChanged)
	s.Len(s.store.keys, 1)
	s.tenants.AssertNotCalled(s.T(), "Delete", mock.Anything, mock.Anything)
}

func (s *OffboardWorkerTestSuite) TestCatalogChangedDuringArchiveLeavesMessage() {
	tenantID := uuid.New()
	s.enqueue(queue.MessageTypeOffboard, tenantID, "rh-1")

	s.tenants.On("GetByID", mock.Anything, tenantID).Return(&domain.Tenant{ID: tenantID, Name: "Acme"}, nil)
	s.products.On("List", mock.Anything, mock.Anything).Return([]domain.Product{}, nil)
	s.documents.On("List", mock.Anything, mock.Anything).Return([]domain.Document{}, nil)
	s.chunks.On("CountByTenant", mock.Anything, tenantID).Return(int64(0), nil).Once()
	s.products.On("CountByTenant", mock.Anything, tenantID).Return(int64(0), nil)
	s.chunks.On("CountByTenant", mock.Anything, tenantID).Return(int64(3), nil).Once()

	s.Require().NoError(s.worker.processMessages(context.Background()))

	s.tenants.AssertNotCalled(s.T(), "Delete", mock.Anything, mock.Anything)
	s.Empty(s.sqs.deleted)
}

func (s *OffboardWorkerTestSuite) TestUndecodableMessageDoesNotBlockBatch() {
	tenantID := uuid.New()
	s.sqs.messages = append(s.sqs.messages, types.Message{
		Body:          aws.String("not json"),
		ReceiptHandle: aws.String("rh-bad"),
	})
	s.enqueue(queue.MessageTypeOffboard, tenantID, "rh-good")
	s.tenants.On("GetByID", mock.Anything, tenantID).Return(nil, domain.ErrNotFound)
	core, logs := observer.New(zapcore.WarnLevel)
	s.worker.logger = &logger.Logger{Logger: zap.New(core)}

	s.Require().NoError(s.worker.processMessages(context.Background()))

	s.Equal([]string{"rh-bad", "rh-good"}, s.sqs.deleted)
	s.Require().Equal(1, logs.Len())
	s.Contains(logs.All()[0].Message, "Dropping undecodable message rh-bad")
}

func (s *OffboardWorkerTestSuite) TestUndecodableMessageBeforeOffboardStillArchives() {
	tenantID := uuid.New()
	s.sqs.messages = append(s.sqs.messages, types.Message{
		Body:          aws.String("not json"),
		ReceiptHandle: aws.String("rh-bad"),
	})
	s.enqueue(queue.MessageTypeOffboard, tenantID, "rh-good")

	s.tenants.On("GetByID", mock.Anything, tenantID).Return(&domain.Tenant{ID: tenantID, Name: "Acme"}, nil)
	s.products.On("List", mock.Anything, mock.Anything).Return([]domain.Product{}, nil)
	s.documents.On("List", mock.Anything, mock.Anything).Return([]domain.Document{}, nil)
	s.chunks.On("CountByTenant", mock.Anything, tenantID).Return(int64(0), nil)
	s.products.On("CountByTenant", mock.Anything, tenantID).Return(int64(0), nil)
	s.tenants.On("Delete", mock.Anything, tenantID).Return(nil)

	s.Require().NoError(s.worker.processMessages(context.Background()))

	s.Len(s.store.keys, 1)
	s.Equal([]string{"rh-bad", "rh-good"}, s.sqs.deleted)
}

func (s *OffboardWorkerTestSuite) TestUnknownMessageTypeIsDropped() {
	s.enqueue(queue.MessageType("REINDEX"), uuid.New(), "rh-9")

	s.Require().NoError(s.worker.processMessages(context.Background()))

	s.Equal([]string{"rh-9"}, s.sqs.deleted)
}

func (s *OffboardWorkerTestSuite) TestStartStop() {
	s.worker.Start(context.Background())
	s.worker.Stop()
}
