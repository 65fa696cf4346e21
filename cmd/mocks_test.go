package cmd

import (
	"context"
	"testing"

	"github.com/mouse-blink/exportall/internal/domain"
	m "github.com/mouse-blink/exportall/internal/model"
	"github.com/stretchr/testify/mock"
)

type mockWorkflow struct {
	mock.Mock
}

func newMockWorkflow(t *testing.T) *mockWorkflow {
	t.Helper()

	wf := &mockWorkflow{}
	t.Cleanup(func() { wf.AssertExpectations(t) })

	return wf
}

func (w *mockWorkflow) Generate(args domain.GenerateArgs) (m.Result, error) {
	ret := w.Called(args)
	result, _ := ret.Get(0).(m.Result)

	return result, ret.Error(1)
}

func (w *mockWorkflow) List(args domain.GenerateArgs) (m.Result, error) {
	ret := w.Called(args)
	result, _ := ret.Get(0).(m.Result)

	return result, ret.Error(1)
}

func (w *mockWorkflow) GenerateAll(ctx context.Context, batch []domain.GenerateArgs, threads int) ([]m.Result, error) {
	ret := w.Called(ctx, batch, threads)
	results, _ := ret.Get(0).([]m.Result)

	return results, ret.Error(1)
}

// useWorkflow swaps the package workflow for the duration of the test.
func useWorkflow(t *testing.T, wf domain.Workflow) {
	t.Helper()

	original := workflow
	workflow = wf
	t.Cleanup(func() { workflow = original })
}
