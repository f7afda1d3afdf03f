// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-roster-bot/internal/mock"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// blockingWorker runs until its context is cancelled.
type blockingWorker struct {
	started atomic.Int32
}

func (b *blockingWorker) Run(ctx context.Context) error {
	b.started.Add(1)
	<-ctx.Done()
	return nil
}

func TestWorkers_Run_AllWorkersAreStarted(t *testing.T) {
	w1, w2, w3 := &blockingWorker{}, &blockingWorker{}, &blockingWorker{}
	ws := NewWorkers(w1, w2, w3)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- ws.Run(ctx) }()

	assert.Eventually(t, func() bool {
		return w1.started.Load() == 1 && w2.started.Load() == 1 && w3.started.Load() == 1
	}, time.Second, 5*time.Millisecond)

	cancel()
	assert.NoError(t, <-done)
}

func TestWorkers_Run_FirstErrorCancelsOthers(t *testing.T) {
	ctrl := gomock.NewController(t)
	failing := mock.NewMockWorker(ctrl)
	boom := errors.New("token revoked")
	failing.EXPECT().Run(gomock.Any()).Return(boom)

	other := &blockingWorker{}

	err := NewWorkers(failing, other).Run(context.Background())

	assert.ErrorIs(t, err, boom)
}

func TestWorkers_Run_Empty(t *testing.T) {
	ws := NewWorkers()

	assert.Equal(t, 0, ws.Len())
	assert.NoError(t, ws.Run(context.Background()))
}

func TestWorkers_Run_Nil(t *testing.T) {
	ws := &Workers{}

	// Should not panic when workers field is nil
	assert.NoError(t, ws.Run(context.Background()))
}
