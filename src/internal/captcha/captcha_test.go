/*
 *  Copyright (c) 2026, WSO2 LLC. (http://www.wso2.org) All Rights Reserved.
 *
 *  Licensed under the Apache License, Version 2.0 (the "License");
 *  you may not use this file except in compliance with the License.
 *  You may obtain a copy of the License at
 *
 *  http://www.apache.org/licenses/LICENSE-2.0
 *
 *  Unless required by applicable law or agreed to in writing, software
 *  distributed under the License is distributed on an "AS IS" BASIS,
 *  WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 *  See the License for the specific language governing permissions and
 *  limitations under the License.
 *
 */

package captcha

import (
	"bytes"
	"encoding/base64"
	"strconv"
	"testing"
	"time"

	"itam-api/src/internal/crypto"
)

func newTestService(t *testing.T) *Service {
	t.Helper()

	key := make([]byte, 32)
	for i := range key {
		key[i] = byte(i)
	}
	cipher, err := crypto.NewTokenCipher(base64.StdEncoding.EncodeToString(key))
	if err != nil {
		t.Fatalf("NewTokenCipher failed: %v", err)
	}
	return NewService(cipher, 280, 90, 5*time.Minute)
}

// issueForAnswer seals a token for a known expected answer so tests can
// exercise Verify deterministically.
func issueForAnswer(t *testing.T, s *Service, answer string, expiresAt time.Time) string {
	t.Helper()

	token, err := s.cipher.Encrypt(answer + payloadSeparator + strconv.FormatInt(expiresAt.Unix(), 10))
	if err != nil {
		t.Fatalf("failed to seal test token: %v", err)
	}
	return token
}

func TestIssueProducesVerifiableToken(t *testing.T) {
	s := newTestService(t)

	for i := 0; i < 20; i++ {
		png, token, err := s.Issue()
		if err != nil {
			t.Fatalf("Issue failed: %v", err)
		}
		if !bytes.HasPrefix(png, []byte("\x89PNG")) {
			t.Fatal("Issue did not return a PNG image")
		}

		payload, err := s.cipher.Decrypt(token)
		if err != nil {
			t.Fatalf("issued token did not decrypt: %v", err)
		}
		answer, _, _ := bytes.Cut([]byte(payload), []byte(payloadSeparator))

		n, err := strconv.Atoi(string(answer))
		if err != nil {
			t.Fatalf("expected numeric answer, got %q", answer)
		}
		// operands are [10,99] and [1,9]
		if n < 11 || n > 108 {
			t.Errorf("answer %d outside the possible operand sum range", n)
		}

		if !s.Verify(string(answer), token) {
			t.Error("Verify rejected the answer sealed in its own token")
		}
	}
}

func TestVerifyTrimRule(t *testing.T) {
	s := newTestService(t)
	token := issueForAnswer(t, s, "50", s.now().Add(time.Minute))

	tests := []struct {
		name    string
		claimed string
		want    bool
	}{
		{name: "exact", claimed: "50", want: true},
		{name: "surrounding whitespace trimmed", claimed: " 50 ", want: true},
		{name: "tab and newline trimmed", claimed: "\t50\n", want: true},
		{name: "wrong answer", claimed: "5", want: false},
		{name: "leading zero is a string mismatch", claimed: "050", want: false},
		{name: "empty", claimed: "", want: false},
		{name: "inner whitespace", claimed: "5 0", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.Verify(tt.claimed, token); got != tt.want {
				t.Errorf("Verify(%q) = %v, want %v", tt.claimed, got, tt.want)
			}
		})
	}
}

func TestVerifyRejectsForeignAndMalformedTokens(t *testing.T) {
	s := newTestService(t)

	otherKey := make([]byte, 32)
	for i := range otherKey {
		otherKey[i] = byte(200 - i)
	}
	otherCipher, _ := crypto.NewTokenCipher(base64.StdEncoding.EncodeToString(otherKey))
	foreign, _ := otherCipher.Encrypt("50|" + strconv.FormatInt(time.Now().Add(time.Minute).Unix(), 10))

	// A well-formed token under our key but without the expiry field.
	noExpiry, _ := s.cipher.Encrypt("50")

	tests := []struct {
		name  string
		token string
	}{
		{name: "empty token", token: ""},
		{name: "garbage token", token: "garbage"},
		{name: "foreign key token", token: foreign},
		{name: "payload missing expiry", token: noExpiry},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if s.Verify("50", tt.token) {
				t.Error("Verify accepted an invalid token")
			}
		})
	}
}

func TestVerifyRejectsTokenFromDifferentChallenge(t *testing.T) {
	s := newTestService(t)

	shown := issueForAnswer(t, s, "50", s.now().Add(time.Minute))
	other := issueForAnswer(t, s, "73", s.now().Add(time.Minute))

	if !s.Verify("50", shown) {
		t.Fatal("sanity: correct token rejected")
	}
	if s.Verify("50", other) {
		t.Error("answer for one challenge verified against another challenge's token")
	}
}

func TestVerifyRejectsSingleCharacterMutations(t *testing.T) {
	s := newTestService(t)
	token := issueForAnswer(t, s, "50", s.now().Add(time.Minute))

	for i := 0; i < len(token); i++ {
		mutated := []byte(token)
		if mutated[i] == 'A' {
			mutated[i] = 'B'
		} else {
			mutated[i] = 'A'
		}
		if string(mutated) == token {
			continue
		}
		if s.Verify("50", string(mutated)) {
			t.Errorf("mutated token (position %d) verified", i)
		}
	}
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	s := newTestService(t)
	token := issueForAnswer(t, s, "50", time.Now().Add(-time.Second))

	if s.Verify("50", token) {
		t.Error("expired token verified")
	}

	// Freeze the clock before expiry: the same token must verify.
	fresh := issueForAnswer(t, s, "50", time.Unix(1_900_000_000, 0))
	s.now = func() time.Time { return time.Unix(1_899_999_999, 0) }
	if !s.Verify("50", fresh) {
		t.Error("unexpired token rejected")
	}
	s.now = func() time.Time { return time.Unix(1_900_000_001, 0) }
	if s.Verify("50", fresh) {
		t.Error("token verified after its expiry instant")
	}
}
