package nmea

const (
	vdmPrefix = sentenceStart2 + "AIVDM,1,1,,A,"
	vdmSuffix = ",0"
)

// Frame wraps an armored payload into a single-fragment VDM sentence on
// channel A, terminated by CR LF.
func Frame(payload string) string {
	body := vdmPrefix + payload + vdmSuffix
	return body + checksumSep + Checksum(body) + lineEnd
}

// FrameBytes is Frame returning the sentence as ASCII bytes.
func FrameBytes(payload string) []byte {
	return []byte(Frame(payload))
}
