package report

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/adhavannn/ai-report-generator/pkg/models/domain"
	"github.com/adhavannn/ai-report-generator/pkg/services/columns"
	"github.com/adhavannn/ai-report-generator/pkg/services/dataset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockChart struct {
	mock.Mock
}

func (m *mockChart) Render(series []domain.GroupedPoint) ([]byte, error) {
	args := m.Called(series)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

type mockNarrative struct {
	mock.Mock
}

func (m *mockNarrative) Generate(ctx context.Context, summary domain.FinancialSummary) (string, error) {
	args := m.Called(ctx, summary)
	return args.String(0), args.Error(1)
}

type mockBuilder struct {
	mock.Mock
}

func (m *mockBuilder) Build(report *domain.Report) ([]byte, error) {
	args := m.Called(report)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

type mockSender struct {
	mock.Mock
}

func (m *mockSender) Send(ctx context.Context, to string, pdfBytes []byte) error {
	args := m.Called(ctx, to, pdfBytes)
	return args.Error(0)
}

const validCSV = "Date,Sales,Costs\n2024-01-01,100,40\n2024-01-02,200,50\n2024-01-01,50,10\n"

func newController(chart *mockChart, narrative *mockNarrative, builder *mockBuilder, sender *mockSender) *Controller {
	return NewController(Dependencies{
		Loader:    dataset.NewLoader(),
		Registry:  columns.DefaultRegistry(),
		Chart:     chart,
		Narrative: narrative,
		Builder:   builder,
		Sender:    sender,
	})
}

func TestRun(t *testing.T) {
	chart := new(mockChart)
	narrative := new(mockNarrative)
	chart.On("Render", mock.Anything).Return([]byte("png-bytes"), nil)
	narrative.On("Generate", mock.Anything, mock.Anything).Return("Solid quarter.", nil)

	ctrl := newController(chart, narrative, new(mockBuilder), new(mockSender))
	result, err := ctrl.Run(context.Background(), strings.NewReader(validCSV), "data.csv")

	require.NoError(t, err)
	assert.Equal(t, "sales", result.Resolution.Revenue)
	assert.Equal(t, "costs", result.Resolution.Expense)
	assert.Equal(t, "date", result.Resolution.Date)
	assert.Equal(t, "350", result.Summary.TotalRevenue.String())
	assert.Equal(t, "100", result.Summary.TotalExpenses.String())
	assert.Equal(t, "250", result.Summary.NetProfit.String())
	require.Len(t, result.Series, 2)
	assert.Equal(t, "150", result.Series[0].Revenue.String())
	assert.Equal(t, "200", result.Series[1].Revenue.String())
	assert.Equal(t, []byte("png-bytes"), result.ChartPNG)
	assert.Equal(t, "Solid quarter.", result.Narrative)
	assert.Empty(t, result.Warnings)

	chart.AssertExpectations(t)
	narrative.AssertExpectations(t)
}

func TestRunUnreadableFileIsFatal(t *testing.T) {
	ctrl := newController(new(mockChart), new(mockNarrative), new(mockBuilder), new(mockSender))

	result, err := ctrl.Run(context.Background(), strings.NewReader(""), "empty.csv")

	var fileErr *domain.UnreadableFileError
	require.ErrorAs(t, err, &fileErr)
	assert.Nil(t, result)
}

func TestRunMissingColumnsHaltsWithPreview(t *testing.T) {
	chart := new(mockChart)
	narrative := new(mockNarrative)
	ctrl := newController(chart, narrative, new(mockBuilder), new(mockSender))

	csv := "id,amount,when\n1,100,2024-01-01\n"
	result, err := ctrl.Run(context.Background(), strings.NewReader(csv), "data.csv")

	var missing *domain.MissingColumnsError
	require.ErrorAs(t, err, &missing)
	assert.ElementsMatch(t, []string{domain.FieldRevenue, domain.FieldExpense, domain.FieldDate}, missing.Missing)
	assert.Contains(t, missing.Error(), "sales")

	// preview survives the halt; nothing downstream ran
	require.NotNil(t, result)
	require.NotNil(t, result.Table)
	chart.AssertNotCalled(t, "Render", mock.Anything)
	narrative.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything)
}

func TestRunBadDateIsFatal(t *testing.T) {
	chart := new(mockChart)
	narrative := new(mockNarrative)
	ctrl := newController(chart, narrative, new(mockBuilder), new(mockSender))

	csv := "Date,Sales,Costs\nsoon,100,40\n"
	result, err := ctrl.Run(context.Background(), strings.NewReader(csv), "data.csv")

	var dateErr *domain.DateParseError
	require.ErrorAs(t, err, &dateErr)
	require.NotNil(t, result)
	chart.AssertNotCalled(t, "Render", mock.Anything)
	narrative.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything)
}

func TestRunDegradesOnChartAndNarrativeFailure(t *testing.T) {
	chart := new(mockChart)
	narrative := new(mockNarrative)
	chart.On("Render", mock.Anything).Return(nil, domain.ErrNotEnoughData)
	narrative.On("Generate", mock.Anything, mock.Anything).
		Return("", &domain.NarrativeUnavailableError{Err: errors.New("timeout")})

	ctrl := newController(chart, narrative, new(mockBuilder), new(mockSender))
	result, err := ctrl.Run(context.Background(), strings.NewReader(validCSV), "data.csv")

	require.NoError(t, err, "chart and narrative failures must not abort the run")
	assert.Empty(t, result.ChartPNG)
	assert.Empty(t, result.Narrative)
	assert.Contains(t, result.Warnings, WarningChart)
	assert.Contains(t, result.Warnings, WarningNarrative)
	assert.Equal(t, "350", result.Summary.TotalRevenue.String())
}

func TestBuildPDF(t *testing.T) {
	builder := new(mockBuilder)
	builder.On("Build", mock.MatchedBy(func(r *domain.Report) bool {
		return r.Title == "AI Business Report" && r.Narrative == "text"
	})).Return([]byte("%PDF"), nil)

	ctrl := newController(new(mockChart), new(mockNarrative), builder, new(mockSender))
	result := &domain.RunResult{Narrative: "text"}

	report, out, err := ctrl.BuildPDF(result)
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF"), out)
	assert.False(t, report.GeneratedAt.IsZero())
	builder.AssertExpectations(t)
}

func TestDeliver(t *testing.T) {
	t.Run("blank address skips delivery", func(t *testing.T) {
		sender := new(mockSender)
		ctrl := newController(new(mockChart), new(mockNarrative), new(mockBuilder), sender)

		result := &domain.RunResult{Warnings: map[string]string{}}
		ctrl.Deliver(context.Background(), result, "", []byte("%PDF"))

		sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything)
		assert.Empty(t, result.Warnings)
	})

	t.Run("failure becomes a warning", func(t *testing.T) {
		sender := new(mockSender)
		sender.On("Send", mock.Anything, "owner@example.com", mock.Anything).
			Return(&domain.DeliveryError{Recipient: "owner@example.com", Err: errors.New("relay down")})

		ctrl := newController(new(mockChart), new(mockNarrative), new(mockBuilder), sender)
		result := &domain.RunResult{Warnings: map[string]string{}}
		ctrl.Deliver(context.Background(), result, "owner@example.com", []byte("%PDF"))

		assert.Contains(t, result.Warnings, WarningDelivery)
		sender.AssertExpectations(t)
	})

	t.Run("success leaves no warning", func(t *testing.T) {
		sender := new(mockSender)
		sender.On("Send", mock.Anything, "owner@example.com", mock.Anything).Return(nil)

		ctrl := newController(new(mockChart), new(mockNarrative), new(mockBuilder), sender)
		result := &domain.RunResult{Warnings: map[string]string{}}
		ctrl.Deliver(context.Background(), result, "owner@example.com", []byte("%PDF"))

		assert.Empty(t, result.Warnings)
	})
}
