// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-flashcards/models"
)

const testHashKey = "test-secret-key"

func TestInitHasherPoolAndHash(t *testing.T) {
	key := "secret-key"
	InitHasherPool(key)

	data := []byte("test-data")

	sum1 := Hash(data)
	sum2 := Hash(data)

	if len(sum1) == 0 {
		t.Fatal("hash result is empty")
	}

	if !bytes.Equal(sum1, sum2) {
		t.Fatal("hash must be deterministic for the same input")
	}

	h := hmac.New(sha256.New, []byte(key))
	h.Write(data)
	expected := h.Sum(nil)

	if !bytes.Equal(sum1, expected) {
		t.Fatalf("unexpected hash value\nwant: %x\ngot:  %x", expected, sum1)
	}
}

func TestHash_WithCardPayload(t *testing.T) {
	InitHasherPool(testHashKey)

	payload, err := json.Marshal(models.CardFields{
		Front:     "Hello",
		Back:      "Hola",
		FrontLang: "English",
		BackLang:  "Spanish",
	})
	if err != nil {
		t.Fatalf("failed to marshal card: %v", err)
	}

	got := hex.EncodeToString(Hash(payload))
	assert.Equal(t, HashString(string(payload), testHashKey), got)
}

// TestHash_DifferentPayloads checks that different cards hash differently.
func TestHash_DifferentPayloads(t *testing.T) {
	InitHasherPool(testHashKey)

	bytes1, _ := json.Marshal(models.CardFields{Front: "Cat", Back: "Gato"})
	bytes2, _ := json.Marshal(models.CardFields{Front: "Dog", Back: "Perro"})

	if hex.EncodeToString(Hash(bytes1)) == hex.EncodeToString(Hash(bytes2)) {
		t.Error("different payloads must produce different hashes")
	}
}

// TestHash_DifferentKeys checks that the same body signs differently per key.
func TestHash_DifferentKeys(t *testing.T) {
	payload := []byte(`{"front":"Water","back":"Agua"}`)

	InitHasherPool("key-one")
	hash1 := hex.EncodeToString(Hash(payload))

	InitHasherPool("key-two")
	hash2 := hex.EncodeToString(Hash(payload))

	if hash1 == hash2 {
		t.Error("different keys must produce different hashes for the same payload")
	}
}

func TestVerifyHash(t *testing.T) {
	body := []byte(`{"front":"Book","back":"Libro"}`)
	sig := HashString(string(body), testHashKey)

	tests := []struct {
		name string
		body []byte
		sig  string
		key  string
		want bool
	}{
		{name: "valid", body: body, sig: sig, key: testHashKey, want: true},
		{name: "tampered body", body: []byte(`{"front":"Boot"}`), sig: sig, key: testHashKey},
		{name: "wrong key", body: body, sig: sig, key: "other"},
		{name: "not hex", body: body, sig: "zz", key: testHashKey},
		{name: "empty signature", body: body, sig: "", key: testHashKey},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, VerifyHash(tt.body, tt.sig, tt.key))
		})
	}
}
