package lib

import "testing"

const testEncryptionKey = "0123456789abcdef0123456789abcdef"

func TestEncryptDecryptRoundTrip(t *testing.T) {
	plaintext := "device unlock code 1234"

	encrypted, err := Encrypt(plaintext, testEncryptionKey)
	if err != nil {
		t.Fatalf("encrypt: %v", err)
	}
	if encrypted == plaintext {
		t.Fatalf("expected ciphertext to differ from plaintext")
	}

	decrypted, err := Decrypt(encrypted, testEncryptionKey)
	if err != nil {
		t.Fatalf("decrypt: %v", err)
	}
	if decrypted != plaintext {
		t.Fatalf("expected %q got %q", plaintext, decrypted)
	}
}

func TestEncryptEmptyStringPassesThrough(t *testing.T) {
	encrypted, err := Encrypt("", testEncryptionKey)
	if err != nil {
		t.Fatalf("encrypt: %v", err)
	}
	if encrypted != "" {
		t.Fatalf("expected empty ciphertext, got %q", encrypted)
	}
}

func TestEncryptRejectsShortKey(t *testing.T) {
	if _, err := Encrypt("secret", "too short"); err == nil {
		t.Fatalf("expected an error for a non 32 byte key")
	}
}

func TestDecryptWithWrongKeyFails(t *testing.T) {
	encrypted, err := Encrypt("secret", testEncryptionKey)
	if err != nil {
		t.Fatalf("encrypt: %v", err)
	}

	wrongKey := "ffffffffffffffffffffffffffffffff"
	if _, err := Decrypt(encrypted, wrongKey); err == nil {
		t.Fatalf("expected decryption with the wrong key to fail")
	}
}
