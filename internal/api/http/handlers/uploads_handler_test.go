package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

type fakeStore struct {
	failOn string
	max    int64
	saved  []string
}

func (f *fakeStore) Save(filename string, _ io.Reader) (string, error) {
	if filename == f.failOn {
		return "", errors.New("disk full")
	}
	f.saved = append(f.saved, filename)
	return "/uploads/" + filename, nil
}

func (f *fakeStore) MaxBytes() int64 {
	if f.max == 0 {
		return 10 << 20
	}
	return f.max
}

func multipartBody(t *testing.T, field string, files map[string][]byte, order []string) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	for _, name := range order {
		part, err := w.CreateFormFile(field, name)
		if err != nil {
			t.Fatalf("create form file: %v", err)
		}
		if _, err := part.Write(files[name]); err != nil {
			t.Fatalf("write form file: %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close multipart writer: %v", err)
	}
	return body, w.FormDataContentType()
}

func TestUploadBatchDropsFailuresKeepsSurvivors(t *testing.T) {
	store := &fakeStore{failOn: "bad.jpg"}
	app := fiber.New()
	app.Post("/uploads", NewUploadsHandler(store).Upload)

	files := map[string][]byte{
		"bad.jpg":      []byte("img"),
		"good-one.jpg": []byte("img"),
		"good-two.jpg": []byte("img"),
	}
	body, contentType := multipartBody(t, "files", files, []string{"bad.jpg", "good-one.jpg", "good-two.jpg"})

	req := httptest.NewRequest(fiber.MethodPost, "/uploads", body)
	req.Header.Set("Content-Type", contentType)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("status = %d, want 201", resp.StatusCode)
	}

	var payload struct {
		Data struct {
			URLs []string `json:"urls"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	want := []string{"/uploads/good-one.jpg", "/uploads/good-two.jpg"}
	if len(payload.Data.URLs) != len(want) {
		t.Fatalf("urls = %v, want %v", payload.Data.URLs, want)
	}
	for i, url := range want {
		if payload.Data.URLs[i] != url {
			t.Errorf("urls[%d] = %q, want %q", i, payload.Data.URLs[i], url)
		}
	}
}

func TestUploadBatchSkipsOversizeFiles(t *testing.T) {
	store := &fakeStore{max: 4}
	app := fiber.New()
	app.Post("/uploads", NewUploadsHandler(store).Upload)

	files := map[string][]byte{
		"huge.jpg":  []byte("way too many bytes"),
		"small.jpg": []byte("ok"),
	}
	body, contentType := multipartBody(t, "files", files, []string{"huge.jpg", "small.jpg"})

	req := httptest.NewRequest(fiber.MethodPost, "/uploads", body)
	req.Header.Set("Content-Type", contentType)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("status = %d, want 201", resp.StatusCode)
	}

	var payload struct {
		Data struct {
			URLs []string `json:"urls"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(payload.Data.URLs) != 1 || payload.Data.URLs[0] != "/uploads/small.jpg" {
		t.Errorf("urls = %v, want only /uploads/small.jpg", payload.Data.URLs)
	}
}

func TestUploadSingleFile(t *testing.T) {
	store := &fakeStore{}
	app := fiber.New()
	app.Post("/uploads", NewUploadsHandler(store).Upload)

	files := map[string][]byte{"photo.jpg": []byte("img")}
	body, contentType := multipartBody(t, "file", files, []string{"photo.jpg"})

	req := httptest.NewRequest(fiber.MethodPost, "/uploads", body)
	req.Header.Set("Content-Type", contentType)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("status = %d, want 201", resp.StatusCode)
	}

	var payload struct {
		Data struct {
			URL string `json:"url"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if payload.Data.URL != "/uploads/photo.jpg" {
		t.Errorf("url = %q, want /uploads/photo.jpg", payload.Data.URL)
	}
}
