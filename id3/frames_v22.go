package id3

import "strings"

// v22FrameIDs maps ID3v2.2 3-character frame IDs to their v2.3/v2.4
// 4-character equivalents. IDs absent from the table are preserved
// opaquely in the tag's unknown-frame list.
var v22FrameIDs = map[string]string{
	"BUF": "RBUF",
	"CNT": "PCNT",
	"COM": "COMM",
	"CRA": "AENC",
	"ETC": "ETCO",
	"GEO": "GEOB",
	"IPL": "IPLS",
	"LNK": "LINK",
	"MCI": "MCDI",
	"MLL": "MLLT",
	"PIC": "APIC",
	"POP": "POPM",
	"REV": "RVRB",
	"SLT": "SYLT",
	"STC": "SYTC",
	"TAL": "TALB",
	"TBP": "TBPM",
	"TCM": "TCOM",
	"TCO": "TCON",
	"TCR": "TCOP",
	"TDA": "TDAT",
	"TDY": "TDLY",
	"TEN": "TENC",
	"TFT": "TFLT",
	"TIM": "TIME",
	"TKE": "TKEY",
	"TLA": "TLAN",
	"TLE": "TLEN",
	"TMT": "TMED",
	"TOA": "TOPE",
	"TOF": "TOFN",
	"TOL": "TOLY",
	"TOR": "TORY",
	"TOT": "TOAL",
	"TP1": "TPE1",
	"TP2": "TPE2",
	"TP3": "TPE3",
	"TP4": "TPE4",
	"TPA": "TPOS",
	"TPB": "TPUB",
	"TRC": "TSRC",
	"TRD": "TRDA",
	"TRK": "TRCK",
	"TSI": "TSIZ",
	"TSS": "TSSE",
	"TT1": "TIT1",
	"TT2": "TIT2",
	"TT3": "TIT3",
	"TXT": "TEXT",
	"TXX": "TXXX",
	"TYE": "TYER",
	"UFI": "UFID",
	"ULT": "USLT",
	"WAF": "WOAF",
	"WAR": "WOAR",
	"WAS": "WOAS",
	"WCM": "WCOM",
	"WCP": "WCOP",
	"WPB": "WPUB",
	"WXX": "WXXX",
}

// convertV22FrameID maps a v2.2 frame ID to its modern equivalent.
func convertV22FrameID(id string) (string, bool) {
	v4, ok := v22FrameIDs[id]
	return v4, ok
}

// parseV22Picture decodes a v2.2 PIC frame. The layout differs from
// APIC: a fixed 3-character image format code stands in for the MIME
// string. The result is a regular PictureFrame under the APIC ID.
func parseV22Picture(data []byte) (Frame, error) {
	if len(data) < 5 {
		return nil, &FrameError{ID: "PIC", Reason: "frame too short"}
	}

	enc, err := EncodingFromByte(data[0])
	if err != nil {
		return nil, err
	}

	var mime string
	switch strings.ToUpper(string(data[1:4])) {
	case "JPG":
		mime = "image/jpeg"
	case "PNG":
		mime = "image/png"
	default:
		mime = "image/" + strings.ToLower(string(data[1:4]))
	}

	picType := pictureTypeFromByte(data[4])
	rest := data[5:]
	desc, consumed := readEncodedText(rest, enc)

	return &PictureFrame{
		ID:       "APIC",
		Encoding: enc,
		MIME:     mime,
		Type:     picType,
		Desc:     desc,
		Data:     append([]byte(nil), rest[consumed:]...),
	}, nil
}
