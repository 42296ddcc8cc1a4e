package ec

import (
	"math/big"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/smartcontractkit/ecgfp/internal/testimplementations"
	"github.com/stretchr/testify/require"
)

func TestRegisterMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	require.NoError(t, RegisterMetrics(reg))
	require.NoError(t, RegisterMetrics(reg))

	// Make sure both vectors have at least one child, so they are gathered.
	_, _ = Decode(P192.Curve(), []byte{0x05})
	new(Point).ScalarMult(big.NewInt(3), P192.Generator())

	families, err := reg.Gather()
	require.NoError(t, err)
	names := make([]string, 0, len(families))
	for _, f := range families {
		names = append(names, f.GetName())
	}
	require.Contains(t, names, "ecgfp_point_decode_failures_total")
	require.Contains(t, names, "ecgfp_scalar_multiplications_total")
}

func TestRegisterMetricsCollectors(t *testing.T) {
	reg := &testimplementations.TestMetricsRegisterer{}
	require.NoError(t, RegisterMetrics(reg))
	require.Len(t, reg.Collectors, 2)
	require.True(t, reg.Unregister(scalarMults))
	require.Len(t, reg.Collectors, 1)

	reg = &testimplementations.TestMetricsRegisterer{Reject: true}
	require.ErrorIs(t, RegisterMetrics(reg), testimplementations.ErrRegistrationRejected)
}

func TestDecodeFailureCounter(t *testing.T) {
	counter := decodeFailures.WithLabelValues(P256.Name(), "unknown_tag")
	before := testutil.ToFloat64(counter)

	_, err := Decode(P256.Curve(), []byte{0x05, 0x01})
	require.ErrorIs(t, err, ErrUnknownTag)
	require.Equal(t, before+1, testutil.ToFloat64(counter))

	// Successful decodes are not counted.
	_, err = Decode(P256.Curve(), P256.Generator().Encode(Compressed))
	require.NoError(t, err)
	require.Equal(t, before+1, testutil.ToFloat64(counter))
}

func TestScalarMultCounter(t *testing.T) {
	counter := scalarMults.WithLabelValues(Secp256k1.Name())
	before := testutil.ToFloat64(counter)
	Secp256k1.ScalarBaseMult(Secp256k1.Scalar().SetUint(9))
	require.Equal(t, before+1, testutil.ToFloat64(counter))
}

func TestReasonLabels(t *testing.T) {
	require.Equal(t, "truncated", reason(ErrTruncated))
	require.Equal(t, "hybrid_mismatch", reason(ErrHybridMismatch))
	require.Equal(t, "not_on_curve", reason(ErrNotOnCurve))
	require.Equal(t, "no_square_root", reason(ErrNoSquareRoot))
	require.Equal(t, "coordinate_range", reason(ErrCoordinateRange))
	require.Equal(t, "invalid_encoding", reason(ErrInvalidEncoding))
}
