package server

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"
	"unicode"

	"ytdlproxy/internal/domain/errconsts"
	"ytdlproxy/internal/file"
	"ytdlproxy/internal/models"
	"ytdlproxy/internal/utils/logging"
)

// streamArtifact writes the downloaded file to the client and then deletes it.
//
// The file is removed once the copy returns, whether the client read everything,
// went away part way through, or the file could not be read at all.
func streamArtifact(w http.ResponseWriter, r *http.Request, art *models.OutputArtifact) {
	reaper := file.NewReaper(art.Path)
	defer reaper.Reap()

	f, err := os.Open(art.Path)
	if err != nil {
		respondError(w, r, fmt.Errorf("%w: %v", errconsts.ErrStreamIO, err))
		return
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		respondError(w, r, fmt.Errorf("%w: %v", errconsts.ErrStreamIO, err))
		return
	}

	h := w.Header()
	h.Set("Content-Type", art.ContentType)
	h.Set("Content-Disposition", contentDisposition(art.DownloadFilename))
	h.Set("Content-Length", strconv.FormatInt(info.Size(), 10))
	w.WriteHeader(http.StatusOK)

	n, err := io.Copy(w, f)
	if err != nil {
		log := logging.FromRequest(r)
		if ctxErr := r.Context().Err(); ctxErr != nil {
			log.Warn().Err(ctxErr).Int64("sent", n).Int64("size", info.Size()).Msg("Client went away during streaming")
			return
		}
		log.Error().Err(err).Int64("sent", n).Int64("size", info.Size()).Msg("Streaming failed")
		return
	}
	logging.D(1, "Streamed %d bytes of %q", n, art.DownloadFilename)
}

// contentDisposition builds an attachment header carrying name both as a plain
// ASCII fallback and as an RFC 5987 UTF-8 value.
func contentDisposition(name string) string {
	fallback := strings.Map(func(r rune) rune {
		if r > unicode.MaxASCII || r == '"' || r == '\\' || !unicode.IsPrint(r) {
			return '_'
		}
		return r
	}, name)
	return fmt.Sprintf(`attachment; filename="%s"; filename*=UTF-8''%s`, fallback, encodeExtValue(name))
}

// encodeExtValue percent-encodes s as an RFC 5987 value, leaving only attr-char bytes as is.
func encodeExtValue(s string) string {
	const hex = "0123456789ABCDEF"
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isAttrChar(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(hex[c>>4])
		b.WriteByte(hex[c&0x0f])
	}
	return b.String()
}

func isAttrChar(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	return strings.IndexByte("!#$&+-.^_`|~", c) >= 0
}
