package syncqueue

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/sales-commission-api/internal/notification"
	"github.com/vfg2006/sales-commission-api/internal/notification/mocks"
	"go.uber.org/mock/gomock"
)

func TestQueue_Enqueue(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockHandler := mocks.NewMockJobHandler(ctrl)
	queue := New(mockHandler)

	job := notification.AdminReportJob{AdminEmail: "admin@example.com", Date: "15/03/2024"}

	t.Run("Processa o job imediatamente", func(t *testing.T) {
		mockHandler.EXPECT().Handle(gomock.Any(), job).Return(nil)

		assert.NoError(t, queue.Enqueue(context.Background(), job))
	})

	t.Run("Falha de entrega não é propagada para quem enfileira", func(t *testing.T) {
		mockHandler.EXPECT().Handle(gomock.Any(), job).Return(errors.New("smtp indisponível"))

		assert.NoError(t, queue.Enqueue(context.Background(), job))
	})
}
