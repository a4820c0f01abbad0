package api

import (
	"Portfolio/internal/cli/store"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// StatusError — ответ сервера с неожиданным статусом.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("server status %d", e.Code)
	}
	return fmt.Sprintf("server status %d: %s", e.Code, e.Message)
}

// Endpoint склеивает базовый URL сервера и сегменты пути.
func Endpoint(base string, parts ...string) string {
	u := strings.TrimRight(base, "/")
	for _, p := range parts {
		u += "/" + strings.Trim(p, "/")
	}
	return u
}

// Do выполняет запрос и возвращает ответ с уже прочитанным телом.
// Если id не nil, идентичность уходит в заголовках uuid и token.
func Do(ctx context.Context, method, url string, body io.Reader, contentType string, id *store.Identity) (*http.Response, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, nil, err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if id != nil {
		req.Header.Set("uuid", strconv.FormatInt(id.UUID, 10))
		req.Header.Set("token", id.Token)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp, nil, err
	}
	return resp, b, nil
}

// PostJSON отправляет JSON POST.
func PostJSON(ctx context.Context, url string, payload any, id *store.Identity) (*http.Response, []byte, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	return Do(ctx, http.MethodPost, url, bytes.NewReader(b), "application/json", id)
}

// MessageOf достаёт поле message из JSON-ответа, иначе возвращает тело как есть.
func MessageOf(body []byte) string {
	var m struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &m); err == nil && m.Message != "" {
		return m.Message
	}
	return strings.TrimSpace(string(body))
}

// ResourceForm — поля записи блога или проекта для multipart-запроса.
type ResourceForm struct {
	Title     string
	Subtitle  string
	Link      string
	ImagePath string
}

// Encode собирает multipart/form-data тело. Пустые поля не отправляются,
// чтобы сервер сам сообщил, чего не хватает.
func (f ResourceForm) Encode() (string, *bytes.Buffer, error) {
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	for _, kv := range [][2]string{{"title", f.Title}, {"subtitle", f.Subtitle}, {"link", f.Link}} {
		if kv[1] == "" {
			continue
		}
		if err := w.WriteField(kv[0], kv[1]); err != nil {
			return "", nil, err
		}
	}
	if f.ImagePath != "" {
		data, err := os.ReadFile(f.ImagePath)
		if err != nil {
			return "", nil, fmt.Errorf("read image: %w", err)
		}
		hdr := make(textproto.MIMEHeader)
		hdr.Set("Content-Disposition", fmt.Sprintf(`form-data; name="image"; filename=%q`, filepath.Base(f.ImagePath)))
		hdr.Set("Content-Type", imageContentType(f.ImagePath, data))
		pw, err := w.CreatePart(hdr)
		if err != nil {
			return "", nil, err
		}
		if _, err := pw.Write(data); err != nil {
			return "", nil, err
		}
	}
	if err := w.Close(); err != nil {
		return "", nil, err
	}
	return w.FormDataContentType(), body, nil
}

func imageContentType(path string, data []byte) string {
	if ct := mime.TypeByExtension(strings.ToLower(filepath.Ext(path))); ct != "" {
		return ct
	}
	return http.DetectContentType(data)
}
