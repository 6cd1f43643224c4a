package web

import (
	"bytes"
	"fmt"
	"io"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aisproto/tms/ais"
	"aisproto/tms/cmd/tools/tsimulator/object"
)

const gpsdSentence = "!AIVDM,1,1,,B,177KQJ5000G?tO`K>RA1wUbN0TKH,0*5C"

func getNewControl(t *testing.T) *object.Control {
	control, err := object.NewControl(nil, []object.Vessel{
		{
			MMSI:        235009802,
			Name:        "TEST",
			Destination: "testDestination",
			ETA:         "02101504",
			Type:        30,
			Position:    object.Point{Latitude: 20.1, Longitude: 20.1},
			Speed:       10,
		},
	}, nil)
	require.NoError(t, err)
	return control
}

func getRequest(t *testing.T, method, urlStr string, body io.Reader) *http.Response {
	request, err := http.NewRequest(method, urlStr, body)
	require.NoError(t, err)
	request.Header = http.Header{"Content-Type": {"application/json"}}
	response, err := http.DefaultClient.Do(request)
	require.NoError(t, err)
	return response
}

func newServer(t *testing.T) (*httptest.Server, *object.Control) {
	control := getNewControl(t)
	return httptest.NewServer(NewRouter(control)), control
}

func TestGetVessels(t *testing.T) {
	server, control := newServer(t)
	defer server.Close()

	var data struct {
		Count   int
		Vessels []object.Vessel
	}
	response := getRequest(t, http.MethodGet, server.URL+"/vessels", nil)
	defer response.Body.Close()
	assert.Equal(t, http.StatusOK, response.StatusCode)
	require.NoError(t, json.NewDecoder(response.Body).Decode(&data))
	assert.Equal(t, 1, data.Count)
	assert.Equal(t, control.List(), data.Vessels)

	response = getRequest(t, http.MethodGet, server.URL+"/vessels/235009802", nil)
	var v object.Vessel
	require.NoError(t, json.NewDecoder(response.Body).Decode(&v))
	response.Body.Close()
	assert.Equal(t, "TEST", v.Name)

	response = getRequest(t, http.MethodGet, server.URL+"/vessels/1", nil)
	response.Body.Close()
	assert.Equal(t, http.StatusNotFound, response.StatusCode)
}

func TestPutAndDeleteVessel(t *testing.T) {
	server, control := newServer(t)
	defer server.Close()

	response := getRequest(t, http.MethodPost, server.URL+"/vessels",
		strings.NewReader(`{"mmsi": 227006761, "class": "b", "position": {"latitude": "4818.00 N", "longitude": 4}}`))
	response.Body.Close()
	assert.Equal(t, http.StatusCreated, response.StatusCode)
	v, err := control.Get(227006761)
	require.NoError(t, err)
	assert.Equal(t, "B", v.Class)
	assert.InDelta(t, 48.3, float64(v.Position.Latitude), 1e-9)

	response = getRequest(t, http.MethodPost, server.URL+"/vessels", strings.NewReader(`{"name": "NOBODY"}`))
	response.Body.Close()
	assert.Equal(t, http.StatusBadRequest, response.StatusCode)

	response = getRequest(t, http.MethodDelete, server.URL+"/vessels/227006761", nil)
	response.Body.Close()
	assert.Equal(t, http.StatusNoContent, response.StatusCode)
	assert.Len(t, control.List(), 1)

	response = getRequest(t, http.MethodDelete, server.URL+"/vessels/227006761", nil)
	response.Body.Close()
	assert.Equal(t, http.StatusNotFound, response.StatusCode)
}

func TestGetVesselsByClass(t *testing.T) {
	server, control := newServer(t)
	defer server.Close()
	require.NoError(t, control.Put(object.Vessel{MMSI: 227006761, Class: "B"}))

	var data struct {
		Count   int
		Vessels []object.Vessel
	}
	response := getRequest(t, http.MethodGet, server.URL+"/vessels?class=b", nil)
	defer response.Body.Close()
	require.NoError(t, json.NewDecoder(response.Body).Decode(&data))
	require.Equal(t, 1, data.Count)
	assert.Equal(t, uint32(227006761), data.Vessels[0].MMSI)
}

func TestPutVesselSanitized(t *testing.T) {
	server, control := newServer(t)
	defer server.Close()

	response := getRequest(t, http.MethodPost, server.URL+"/vessels",
		strings.NewReader(`{"mmsi": 227006762, "name": "<script>x</script>GALATEE", "destination": "<b>BREST</b>"}`))
	response.Body.Close()
	assert.Equal(t, http.StatusCreated, response.StatusCode)
	v, err := control.Get(227006762)
	require.NoError(t, err)
	assert.Equal(t, "GALATEE", v.Name)
	assert.Equal(t, "BREST", v.Destination)

	response = getRequest(t, http.MethodPost, server.URL+"/vessels",
		strings.NewReader(`{"mmsi": 227006763, "name": "A&B <i>\"X\"</i>", "destination": "L'ABER"}`))
	response.Body.Close()
	assert.Equal(t, http.StatusCreated, response.StatusCode)
	v, err = control.Get(227006763)
	require.NoError(t, err)
	assert.Equal(t, `A&B "X"`, v.Name)
	assert.Equal(t, "L'ABER", v.Destination)
}

func TestEncode(t *testing.T) {
	server, _ := newServer(t)
	defer server.Close()

	body := `{"MMSI": 477553000, "NavigationStatus": 5, "Longitude": -122.345833333, "Latitude": 47.582833333,
		"CourseOverGround": 51, "TrueHeading": 181, "Timestamp": 15, "RadioStatus": 149208}`
	response := getRequest(t, http.MethodPost, server.URL+"/encode/position", strings.NewReader(body))
	defer response.Body.Close()
	require.Equal(t, http.StatusOK, response.StatusCode)
	var out map[string]string
	require.NoError(t, json.NewDecoder(response.Body).Decode(&out))

	m, err := ais.DecodeSentence(out["sentence"])
	require.NoError(t, err)
	assert.Equal(t, out["payload"], ais.EncodePayload(m))
	p := m.(*ais.PositionReport)
	assert.Equal(t, uint8(1), p.MessageID)
	assert.Equal(t, uint32(477553000), p.MMSI)
	assert.Equal(t, uint16(181), p.TrueHeading)
	assert.True(t, strings.HasSuffix(out["sentence"], "\r\n"))

	response = getRequest(t, http.MethodPost, server.URL+"/encode/radar", strings.NewReader("{}"))
	response.Body.Close()
	assert.Equal(t, http.StatusNotFound, response.StatusCode)

	response = getRequest(t, http.MethodPost, server.URL+"/encode/static", strings.NewReader("{"))
	response.Body.Close()
	assert.Equal(t, http.StatusBadRequest, response.StatusCode)
}

func TestEncodeEveryType(t *testing.T) {
	server, _ := newServer(t)
	defer server.Close()

	for name, factory := range messageFactories {
		response := getRequest(t, http.MethodPost, fmt.Sprintf("%s/encode/%s", server.URL, name),
			strings.NewReader(`{"MMSI": 970010001}`))
		var out map[string]string
		require.NoError(t, json.NewDecoder(response.Body).Decode(&out), name)
		response.Body.Close()

		m, err := ais.DecodeSentence(out["sentence"])
		require.NoError(t, err, name)
		assert.Equal(t, factory().GetHeader().MessageID, m.GetHeader().MessageID, name)
		assert.Equal(t, uint32(970010001), m.GetHeader().MMSI, name)
	}
}

func TestDecode(t *testing.T) {
	server, _ := newServer(t)
	defer server.Close()

	bad := gpsdSentence[:len(gpsdSentence)-2] + "00"
	body := bytes.NewBufferString(gpsdSentence + "\r\n\r\n" + bad + "\r\nnonsense\r\n")
	response := getRequest(t, http.MethodPost, server.URL+"/decode?strict=true", body)
	defer response.Body.Close()
	require.Equal(t, http.StatusOK, response.StatusCode)

	data, err := ioutil.ReadAll(response.Body)
	require.NoError(t, err)
	var out []struct {
		Sentence string
		Type     string
		MMSI     string
		Message  map[string]interface{}
		Error    string
	}
	require.NoError(t, json.Unmarshal(data, &out))
	require.Len(t, out, 3)
	assert.Equal(t, "PositionReport", out[0].Type)
	assert.Equal(t, "477553000", out[0].MMSI)
	assert.EqualValues(t, 181, out[0].Message["TrueHeading"])
	assert.Empty(t, out[0].Error)
	assert.Contains(t, out[1].Error, "checksum")
	assert.NotEmpty(t, out[2].Error)
	assert.Nil(t, out[2].Message)
}
