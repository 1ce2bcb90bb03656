package processor

import (
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/sqs/types"

	"weather-api/internal/domain/usecase/forecast"
	"weather-api/pkg/log"
)

type RefreshProcessor struct {
	forecastUseCase forecast.UseCase
}

func NewRefreshProcessor(forecastUseCase forecast.UseCase) *RefreshProcessor {
	return &RefreshProcessor{
		forecastUseCase: forecastUseCase,
	}
}

// HandleMessage implements the sqs.Handler interface
func (p *RefreshProcessor) HandleMessage(msg *types.Message) error {
	if msg == nil || msg.Body == nil {
		return fmt.Errorf("received nil message or message body")
	}

	if msg.MessageId != nil {
		log.Infof("Processing refresh message: %s", *msg.MessageId)
	}

	var refresh forecast.RefreshMessage
	if err := json.Unmarshal([]byte(*msg.Body), &refresh); err != nil {
		return fmt.Errorf("failed to unmarshal message body: %w", err)
	}

	if refresh.Key == "" {
		return fmt.Errorf("refresh message has no key")
	}

	if err := p.forecastUseCase.RefreshCachedCity(refresh.Key); err != nil {
		return fmt.Errorf("failed to refresh cached forecast for '%s': %w", refresh.Key, err)
	}

	return nil
}
