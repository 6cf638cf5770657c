package spr

import (
	"encoding/binary"
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"biometa-converter/convert"
	"biometa-converter/readers"
)

func float32Blob(values ...float32) []byte {
	blob := make([]byte, 0, len(values)*4)
	for _, v := range values {
		blob = binary.LittleEndian.AppendUint32(blob, math.Float32bits(v))
	}

	return blob
}

func fieldNames(m convert.Measurement) []string {
	names := make([]string, 0, m.Len())
	for _, f := range m.Fields() {
		names = append(names, f.Name)
	}

	return names
}

// testStreams mimics a two flow cell export: the sensorgram payload
// holds the time axis, the response, and one trailing padding element.
func testStreams() []Stream {
	return []Stream{
		{Path: []string{"Fc1", "Kinetics"}, Name: "Properties", Data: []byte("ignored")},
		{Path: []string{"Fc1", "Kinetics"}, Name: "XYData", Data: float32Blob(0, 0.5, 1, 10.5, 11.5, 0)},
		{Path: []string{"Fc2", "Kinetics"}, Name: "XYData", Data: float32Blob(0, 0.5, 1, 20.5, 21.5, 0)},
	}
}

func TestSensorgramMeasurements(t *testing.T) {
	measurements, err := sensorgramMeasurements(testStreams(), zap.NewNop())
	require.NoError(t, err)
	require.Len(t, measurements, 2)

	first := measurements[0]
	assert.Equal(t, []string{
		"Flow Cell",
		"Stream Label",
		"Time [s]",
		"Response [RU]",
	}, fieldNames(first))

	cell, ok := first.Get("Flow Cell")
	require.True(t, ok)
	assert.Equal(t, int64(1), cell.IntVal())

	label, ok := first.Get("Stream Label")
	require.True(t, ok)
	assert.Equal(t, "Fc1 Kinetics XYData", label.StringVal())

	times, ok := first.Get("Time [s]")
	require.True(t, ok)
	assert.Equal(t, "[0,0.5,1]", times.JSON())

	response, ok := first.Get("Response [RU]")
	require.True(t, ok)
	assert.Equal(t, "[10.5,11.5]", response.JSON())

	second := measurements[1]

	cell, ok = second.Get("Flow Cell")
	require.True(t, ok)
	assert.Equal(t, int64(2), cell.IntVal())

	response, ok = second.Get("Response [RU]")
	require.True(t, ok)
	assert.Equal(t, "[20.5,21.5]", response.JSON())
}

func TestSensorgramRootWithoutDigit(t *testing.T) {
	streams := []Stream{
		{Path: []string{"Kinetics"}, Name: "XYData", Data: float32Blob(0, 0)},
	}

	_, err := sensorgramMeasurements(streams, zap.NewNop())
	assert.ErrorContains(t, err, `no flow cell number in stream root "Kinetics"`)
}

func TestSensorgramOddBuffer(t *testing.T) {
	streams := []Stream{
		{Path: []string{"Fc1"}, Name: "XYData", Data: []byte{1, 2, 3}},
	}

	_, err := sensorgramMeasurements(streams, zap.NewNop())
	assert.ErrorContains(t, err, "stream Fc1 XYData")
	assert.ErrorContains(t, err, "multiple of 4")
}

func TestFlowCell(t *testing.T) {
	cell, err := Stream{Name: "Fc3"}.flowCell()
	require.NoError(t, err)
	assert.Equal(t, 3, cell)
}

func TestSensorgramsConvert(t *testing.T) {
	table, err := Table()
	require.NoError(t, err)

	measurements, err := sensorgramMeasurements(testStreams(), zap.NewNop())
	require.NoError(t, err)

	out, err := convert.ToJSON(table, measurements)
	require.NoError(t, err)

	var doc struct {
		Params struct {
			Measurements []struct {
				Position int `json:"position"`
			} `json:"measurements"`
		} `json:"method_specific_parameters"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &doc))

	require.Len(t, doc.Params.Measurements, 2)
	assert.Equal(t, 1, doc.Params.Measurements[0].Position)
	assert.Equal(t, 2, doc.Params.Measurements[1].Position)
}

func TestReadRejectsBadInputSets(t *testing.T) {
	_, err := New().Read("a.blr", "b.blr")
	assert.ErrorIs(t, err, readers.ErrSingleFile)

	path := filepath.Join(t.TempDir(), "junk.blr")
	require.NoError(t, os.WriteFile(path, []byte("not an ole file"), 0o644))

	_, err = New().Read(path)
	assert.ErrorContains(t, err, "is not an OLE compound file")
}
