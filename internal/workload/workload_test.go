package workload

import (
	"context"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap/zapcore"

	"github.com/ajitpratap0/objectpool/pkg/config"
	"github.com/ajitpratap0/objectpool/pkg/errors"
	"github.com/ajitpratap0/objectpool/pkg/logger"
	"github.com/ajitpratap0/objectpool/pkg/pool"
	"github.com/ajitpratap0/objectpool/pkg/testutil"
)

type WorkloadSuite struct {
	testutil.Suite
}

func TestWorkloadSuite(t *testing.T) {
	suite.Run(t, new(WorkloadSuite))
}

func smallConfig(order config.ReleaseOrder) *config.WorkloadConfig {
	cfg := config.NewWorkloadConfig("test")
	cfg.Workload.Rounds = 5
	cfg.Workload.Burst = 4
	cfg.Workload.PayloadSize = 8
	cfg.Workload.ReleaseOrder = order
	return cfg
}

func (s *WorkloadSuite) TestRun_ReusesAfterFirstRound() {
	for _, order := range []config.ReleaseOrder{config.ReleaseLIFO, config.ReleaseFIFO} {
		s.Run(string(order), func() {
			report, err := Run(s.Context(), smallConfig(order), s.Logger())
			s.Require().NoError(err)

			s.Equal(5, report.Rounds)
			s.Equal(20, report.Acquires)
			s.Equal(20, report.Releases)
			s.Equal(4, report.Constructions, "only the first round constructs")
			s.Equal(16, report.Reuses)
			s.Equal(4, report.PeakCheckedOut)
			s.Equal(4, report.TornDown, "close tears down every idle buffer once")
			s.Equal(int64(160), report.BytesWritten)
			s.Equal(string(order), report.ReleaseOrder)
			s.False(report.Cancelled)
			s.InDelta(0.8, report.ReuseRatio(), 1e-9)
		})
	}
}

func (s *WorkloadSuite) TestRun_Cancelled() {
	ctx, cancel := context.WithCancel(s.Context())
	cancel()

	report, err := Run(ctx, smallConfig(config.ReleaseLIFO), s.Logger())
	s.Require().Error(err)
	s.True(errors.IsType(err, errors.ErrorTypeCancelled))
	s.ErrorIs(err, context.Canceled)

	s.Require().NotNil(report)
	s.True(report.Cancelled)
	s.Equal(0, report.Rounds)
	s.Equal(0, report.Constructions)
	s.Equal(0.0, report.ReuseRatio())
}

func (s *WorkloadSuite) TestRun_InvalidConfig() {
	cfg := smallConfig(config.ReleaseLIFO)
	cfg.Workload.Burst = 0

	report, err := Run(s.Context(), cfg, nil)
	s.Require().Error(err)
	s.Nil(report)
	s.True(errors.IsType(err, errors.ErrorTypeConfig))
}

func (s *WorkloadSuite) TestRun_LogsCarryContextFields() {
	log, logs := testutil.ObservedLogger(zapcore.DebugLevel)
	ctx := context.WithValue(s.Context(), logger.RunIDKey, "run-42")

	_, err := Run(ctx, smallConfig(config.ReleaseLIFO), log)
	s.Require().NoError(err)

	started := logs.FilterMessage("workload started").All()
	s.Require().Len(started, 1)
	fields := started[0].ContextMap()
	s.Equal("run-42", fields["run_id"])
	s.Equal(PoolName, fields["pool"])
	s.Equal("test", fields["run"])

	constructed := logs.FilterMessage("constructed instance").All()
	s.Require().NotEmpty(constructed)
	s.Equal("run-42", constructed[0].ContextMap()["run_id"], "the pool logs through the run logger")
}

func (s *WorkloadSuite) TestReport_JSON() {
	report, err := Run(s.Context(), smallConfig(config.ReleaseFIFO), s.Logger())
	s.Require().NoError(err)

	out, err := report.JSON()
	s.Require().NoError(err)

	var decoded map[string]interface{}
	s.Require().NoError(json.Unmarshal(out, &decoded))
	s.Equal("test", decoded["name"])
	s.Equal("fifo", decoded["release_order"])
	s.EqualValues(4, decoded["constructions"])
	s.EqualValues(16, decoded["reuses"])
	s.Contains(decoded, "duration_ns")
}

func TestBuffer_FillKeepsCapacity(t *testing.T) {
	b := &Buffer{}
	assert.Equal(t, 64, b.fill(0, 64))
	capacity := cap(b.Data)

	assert.Equal(t, 32, b.fill(1, 32))
	assert.Len(t, b.Data, 32)
	assert.Equal(t, capacity, cap(b.Data))
	assert.Equal(t, byte(1), b.Data[0])
	assert.Equal(t, 2, b.Uses)

	require.NoError(t, b.Close())
	assert.Nil(t, b.Data)
}

func TestReleaseAll_Order(t *testing.T) {
	tests := []struct {
		order      config.ReleaseOrder
		wantSerial int
	}{
		// LIFO releases 3, 2, 1 so 1 ends on top of the idle stack
		{config.ReleaseLIFO, 1},
		// FIFO releases 1, 2, 3 so 3 ends on top
		{config.ReleaseFIFO, 3},
	}

	for _, tt := range tests {
		t.Run(string(tt.order), func(t *testing.T) {
			r := NewRunner(config.NewWorkloadConfig("order"), testutil.TestLogger(t))
			p := pool.New(pool.WithFactory(r.newBuffer))

			handles := make([]*pool.Handle[Buffer], 0, 3)
			for i := 0; i < 3; i++ {
				h, err := p.Acquire()
				require.NoError(t, err)
				handles = append(handles, h)
			}

			assert.Equal(t, 3, releaseAll(handles, tt.order))
			assert.Equal(t, 3, p.Idle())

			h, err := p.Acquire()
			require.NoError(t, err)
			assert.Equal(t, tt.wantSerial, h.Value().Serial)
			h.Release()
		})
	}
}
