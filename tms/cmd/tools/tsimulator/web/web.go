// Package web contains handlers to manage tsimulator's vessels and to encode
// and decode AIS sentences on demand.
package web

import (
	"bufio"
	"html"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
	jsoniter "github.com/json-iterator/go"
	"github.com/microcosm-cc/bluemonday"
	"github.com/pkg/errors"

	"aisproto/tms/ais"
	"aisproto/tms/cmd/tools/tsimulator/object"
	"aisproto/tms/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const maxBody = 1 << 20

// messageFactories builds an empty message for every encodable type name.
var messageFactories = map[string]func() ais.Message{
	"position":       func() ais.Message { return ais.NewPositionReport(1) },
	"basestation":    func() ais.Message { return ais.NewBaseStationReport() },
	"utcresponse":    func() ais.Message { return ais.NewUTCDateResponse() },
	"static":         func() ais.Message { return ais.NewShipStaticData() },
	"binary":         func() ais.Message { return ais.NewAddressedBinaryMessage() },
	"binarybcast":    func() ais.Message { return ais.NewBinaryBroadcastMessage() },
	"aircraft":       func() ais.Message { return ais.NewAircraftPositionReport() },
	"utcinquiry":     func() ais.Message { return ais.NewUTCDateInquiry() },
	"safety":         func() ais.Message { return ais.NewAddressedSafetyMessage() },
	"safetybcast":    func() ais.Message { return ais.NewSafetyBroadcastMessage() },
	"classb":         func() ais.Message { return ais.NewStandardClassBPositionReport() },
	"extendedclassb": func() ais.Message { return ais.NewExtendedClassBPositionReport() },
}

// NewRouter returns the REST api of the simulator.
func NewRouter(control *object.Control) *mux.Router {
	h := &handler{control: control, decoder: ais.NewDecoder()}
	router := mux.NewRouter()
	router.HandleFunc("/vessels", h.getVessels).Methods(http.MethodGet)
	router.HandleFunc("/vessels", h.putVessel).Methods(http.MethodPost)
	router.HandleFunc("/vessels/{mmsi:[0-9]+}", h.getVessel).Methods(http.MethodGet)
	router.HandleFunc("/vessels/{mmsi:[0-9]+}", h.deleteVessel).Methods(http.MethodDelete)
	router.HandleFunc("/stations", h.getStations).Methods(http.MethodGet)
	router.HandleFunc("/encode/{type}", h.encode).Methods(http.MethodPost)
	router.HandleFunc("/decode", h.decode).Methods(http.MethodPost)
	router.Use(logging)
	return router
}

func logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.Info("[http] - %s %s", r.Method, r.URL)
		next.ServeHTTP(w, r)
	})
}

type handler struct {
	control *object.Control
	decoder *ais.Decoder
}

// getVessels answers every vessel, or the vessels of one transceiver class
// with ?class=A or ?class=B.
func (h *handler) getVessels(w http.ResponseWriter, r *http.Request) {
	var vessels []object.Vessel
	if class := r.URL.Query().Get("class"); class != "" {
		vessels = h.control.ListClass(class)
	} else {
		vessels = h.control.List()
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"count": len(vessels), "vessels": vessels})
}

func (h *handler) getStations(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.control.Stations())
}

func (h *handler) getVessel(w http.ResponseWriter, r *http.Request) {
	v, err := h.control.Get(mmsiVar(r))
	if err != nil {
		writeErrorWithLog(w, http.StatusNotFound, err)
		return
	}
	writeJSON(w, http.StatusOK, v)
}

func (h *handler) putVessel(w http.ResponseWriter, r *http.Request) {
	var v object.Vessel
	if err := json.NewDecoder(io.LimitReader(r.Body, maxBody)).Decode(&v); err != nil {
		writeErrorWithLog(w, http.StatusBadRequest, err)
		return
	}
	sanitize(&v)
	if err := h.control.Put(v); err != nil {
		writeErrorWithLog(w, http.StatusBadRequest, err)
		return
	}
	v, _ = h.control.Get(v.MMSI)
	writeJSON(w, http.StatusCreated, v)
}

func (h *handler) deleteVessel(w http.ResponseWriter, r *http.Request) {
	if err := h.control.Delete(mmsiVar(r)); err != nil {
		writeErrorWithLog(w, http.StatusNotFound, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// encode reads a message as JSON and answers its payload and sentence.
func (h *handler) encode(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["type"]
	factory, ok := messageFactories[name]
	if !ok {
		writeErrorWithLog(w, http.StatusNotFound, errors.Errorf("unknown message type %q", name))
		return
	}
	m := factory()
	if err := json.NewDecoder(io.LimitReader(r.Body, maxBody)).Decode(m); err != nil {
		writeErrorWithLog(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"payload":  ais.EncodePayload(m),
		"sentence": ais.EncodeSentence(m),
	})
}

// Decoded is the answer for one line sent to /decode.
type Decoded struct {
	Sentence string      `json:"sentence"`
	Type     string      `json:"type,omitempty"`
	MMSI     string      `json:"mmsi,omitempty"`
	Message  ais.Message `json:"message,omitempty"`
	Error    string      `json:"error,omitempty"`
}

// decode reads sentences, one per line, and answers one Decoded per line.
// strict=true rejects sentences with a bad checksum.
func (h *handler) decode(w http.ResponseWriter, r *http.Request) {
	strict, _ := strconv.ParseBool(r.URL.Query().Get("strict"))
	ret := []Decoded{}
	scanner := bufio.NewScanner(io.LimitReader(r.Body, maxBody))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		d := Decoded{Sentence: line}
		m, err := h.decoder.DecodeSentence(line, strict)
		if err != nil {
			d.Error = err.Error()
		} else {
			d.Type = ais.Name(m)
			d.MMSI = ais.FormatMMSI(m.GetHeader().MMSI)
			d.Message = m
		}
		ret = append(ret, d)
	}
	if err := scanner.Err(); err != nil {
		writeErrorWithLog(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, ret)
}

// sanitize strips markup from the free text fields of a posted vessel. The
// fields are sent as AIS text, not HTML, so entities are unescaped again.
func sanitize(v *object.Vessel) {
	policy := bluemonday.StrictPolicy()
	clean := func(s string) string {
		return html.UnescapeString(policy.Sanitize(s))
	}
	v.Name = clean(v.Name)
	v.CallSign = clean(v.CallSign)
	v.Destination = clean(v.Destination)
}

func mmsiVar(r *http.Request) uint32 {
	mmsi, _ := strconv.ParseUint(mux.Vars(r)["mmsi"], 10, 32)
	return uint32(mmsi)
}

func writeJSON(w http.ResponseWriter, code int, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		writeErrorWithLog(w, http.StatusInternalServerError, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if _, err := w.Write(data); err != nil {
		log.Error(err.Error())
	}
}

func writeErrorWithLog(w http.ResponseWriter, code int, err error) {
	log.Warn("[http] %d: %v", code, err)
	http.Error(w, err.Error(), code)
}
