package selftest

import (
	"bytes"
	"strings"
	"testing"

	"github.com/smartcontractkit/ecgfp/internal/crypto/ec"
	"github.com/smartcontractkit/ecgfp/internal/logger"
	"github.com/smartcontractkit/libocr/commontypes"
	"github.com/stretchr/testify/require"
)

// recordingLogger keeps the messages it receives.
type recordingLogger struct {
	commontypes.Logger
	infos  []commontypes.LogFields
	errors []commontypes.LogFields
}

func (r *recordingLogger) Debug(string, commontypes.LogFields) {}

func (r *recordingLogger) Info(_ string, fields commontypes.LogFields) {
	r.infos = append(r.infos, fields)
}

func (r *recordingLogger) Error(_ string, fields commontypes.LogFields) {
	r.errors = append(r.errors, fields)
}

func TestRunAllGroups(t *testing.T) {
	lggr := &recordingLogger{}
	require.NoError(t, Run(lggr))
	require.Empty(t, lggr.errors)
	require.Len(t, lggr.infos, len(ec.SupportedGroups))
	for i, g := range ec.SupportedGroups {
		require.Equal(t, g.Name(), lggr.infos[i]["curve"])
		require.Equal(t, 0, lggr.infos[i]["failed"])
	}
}

func TestRunSelectedGroups(t *testing.T) {
	var buf bytes.Buffer
	lggr, err := logger.NewLogger(&buf, "debug", "text")
	require.NoError(t, err)

	require.NoError(t, Run(lggr, ec.P256, ec.Secp256k1))
	out := buf.String()
	require.Equal(t, 2*len(checks), strings.Count(out, "self-test check passed"))
	require.Contains(t, out, "curve=secp256k1")
	require.NotContains(t, out, "curve=P-384")
}

func TestReferenceCoverage(t *testing.T) {
	for _, g := range ec.SupportedGroups {
		if g == ec.P192 {
			require.Nil(t, reference(g))
			continue
		}
		require.NotNil(t, reference(g), g.Name())
	}
}

func TestReferenceAgreesOnIdentity(t *testing.T) {
	g := ec.P256
	identity, err := reference(g)(make([]byte, g.ScalarBytes()))
	require.NoError(t, err)
	require.Equal(t, g.Identity().Encode(ec.Uncompressed), identity)
	require.True(t, g.ScalarBaseMult(g.Scalar()).IsIdentity())
}

func TestReferenceScalarsAreCanonical(t *testing.T) {
	for _, g := range ec.SupportedGroups {
		scalars := referenceScalars(g)
		require.Equal(t, scalars, referenceScalars(g))
		for _, k := range scalars {
			require.Len(t, k, g.ScalarBytes())
			_, err := g.Scalar().SetBytes(k)
			require.NoError(t, err)
		}
	}
}

func TestKnownAnswerEncoding(t *testing.T) {
	require.Len(t, p256TwoG, ec.P256.PointBytes(ec.Uncompressed))
	P, err := ec.Decode(ec.P256.Curve(), p256TwoG)
	require.NoError(t, err)
	require.True(t, P.Equal(ec.P256.ScalarBaseMult(ec.P256.Scalar().SetUint(2))))
}
