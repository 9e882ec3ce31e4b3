package reader

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestLocalResource(t *testing.T) {
	path := writeTestFile(t, "Scene.JSON", "{}")
	res, err := openResource(path)
	if err != nil {
		t.Fatal(err)
	}
	defer res.Close()

	if res.IsRemote() {
		t.Fatal("expected local resource not to be remote")
	}
	if res.Ext() != ".json" {
		t.Fatalf("expected extension .json; got %s", res.Ext())
	}
	if res.Path() != path {
		t.Fatalf("expected path %s; got %s", path, res.Path())
	}
}

func TestHttpResource(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/scenes/scene.zip" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte("payload"))
	}))
	defer server.Close()

	res, err := openResource(server.URL + "/scenes/scene.zip?rev=2")
	if err != nil {
		t.Fatal(err)
	}
	defer res.Close()

	if !res.IsRemote() {
		t.Fatal("expected http resource to be remote")
	}
	if res.Ext() != ".zip" {
		t.Fatalf("expected extension .zip; got %s", res.Ext())
	}
	data, err := io.ReadAll(res)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "payload" {
		t.Fatalf("expected to read 'payload'; got %q", string(data))
	}

	fetchUrl := server.URL + "/file-not-found.json"
	expError := fmt.Sprintf("resource: could not fetch '%s': status %d", fetchUrl, 404)
	_, err = openResource(fetchUrl)
	if err == nil || err.Error() != expError {
		t.Fatalf("expected to get: %s; got %v", expError, err)
	}
}

func TestUnsupportedResourceScheme(t *testing.T) {
	expError := "resource: unsupported scheme 'gopher'"
	_, err := openResource("gopher://digging.json")
	if err == nil || err.Error() != expError {
		t.Fatalf("expected to get: %s; got %v", expError, err)
	}
}

func TestResourceConnectionRefusedError(t *testing.T) {
	_, err := openResource("http://localhost:12345/scene.json")
	if err == nil || !strings.Contains(err.Error(), "connection refused") {
		t.Fatalf("expected to get 'connection refused error'; got %v", err)
	}
}
