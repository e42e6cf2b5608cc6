package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/google/uuid"

	"github.com/kingrain94/shop-rag-api/internal/config"
)

type MessageType string

const (
	MessageTypeOffboard MessageType = "OFFBOARD"
)

type Message struct {
	Type      MessageType `json:"type"`
	TenantID  uuid.UUID   `json:"tenant_id"`
	Timestamp time.Time   `json:"timestamp"`
}

// ReceivedMessage carries either a decoded Message or, when the body could
// not be decoded, DecodeErr. The receipt handle is set in both cases so the
// caller can still delete a malformed message.
type ReceivedMessage struct {
	Message       Message
	ReceiptHandle *string
	DecodeErr     error
}

// Client is the subset of *sqs.Client used here.
type Client interface {
	SendMessage(ctx context.Context, params *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error)
	ReceiveMessage(ctx context.Context, params *sqs.ReceiveMessageInput, optFns ...func(*sqs.Options)) (*sqs.ReceiveMessageOutput, error)
	DeleteMessage(ctx context.Context, params *sqs.DeleteMessageInput, optFns ...func(*sqs.Options)) (*sqs.DeleteMessageOutput, error)
}

type SQSService struct {
	client           Client
	offboardQueueURL string
}

func NewSQSService(client Client, config *config.SQSConfig) *SQSService {
	return &SQSService{
		client:           client,
		offboardQueueURL: config.OffboardQueueURL,
	}
}

func (s *SQSService) OffboardQueueURL() string {
	return s.offboardQueueURL
}

func (s *SQSService) SendOffboardMessage(ctx context.Context, tenantID uuid.UUID) error {
	msg := Message{
		Type:      MessageTypeOffboard,
		TenantID:  tenantID,
		Timestamp: time.Now().UTC(),
	}

	return s.sendMessage(ctx, msg, s.offboardQueueURL)
}

func (s *SQSService) sendMessage(ctx context.Context, msg Message, queueURL string) error {
	msgBody, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	input := &sqs.SendMessageInput{
		MessageBody: aws.String(string(msgBody)),
		QueueUrl:    aws.String(queueURL),
	}

	_, err = s.client.SendMessage(ctx, input)
	if err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}

	return nil
}

func (s *SQSService) ReceiveMessages(ctx context.Context, queueURL string, maxMessages int32, waitTimeSeconds int32) ([]ReceivedMessage, error) {
	input := &sqs.ReceiveMessageInput{
		QueueUrl:            aws.String(queueURL),
		MaxNumberOfMessages: maxMessages,
		WaitTimeSeconds:     waitTimeSeconds,
	}

	output, err := s.client.ReceiveMessage(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to receive messages: %w", err)
	}

	messages := make([]ReceivedMessage, 0, len(output.Messages))
	for _, msg := range output.Messages {
		received := ReceivedMessage{ReceiptHandle: msg.ReceiptHandle}
		if err := json.Unmarshal([]byte(aws.ToString(msg.Body)), &received.Message); err != nil {
			received.DecodeErr = fmt.Errorf("failed to unmarshal message: %w", err)
		}
		messages = append(messages, received)
	}

	return messages, nil
}

func (s *SQSService) DeleteMessage(ctx context.Context, queueURL string, receiptHandle *string) error {
	input := &sqs.DeleteMessageInput{
		QueueUrl:      aws.String(queueURL),
		ReceiptHandle: receiptHandle,
	}

	_, err := s.client.DeleteMessage(ctx, input)
	if err != nil {
		return fmt.Errorf("failed to delete message: %w", err)
	}

	return nil
}
