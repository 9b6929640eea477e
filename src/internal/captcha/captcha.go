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

// Package captcha issues human-solvable arithmetic challenges and verifies
// claimed answers without any server-side session state. The expected
// answer and an expiry timestamp travel inside an encrypted token that the
// caller must echo back unchanged, so any instance can verify any token.
package captcha

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"itam-api/src/internal/crypto"
)

const payloadSeparator = "|"

// Service generates challenge images and verification tokens.
type Service struct {
	cipher *crypto.TokenCipher
	width  int
	height int
	ttl    time.Duration
	now    func() time.Time
}

// NewService creates a challenge service backed by the given cipher.
func NewService(cipher *crypto.TokenCipher, width, height int, ttl time.Duration) *Service {
	return &Service{
		cipher: cipher,
		width:  width,
		height: height,
		ttl:    ttl,
		now:    time.Now,
	}
}

// Issue generates a new arithmetic challenge and returns the rendered PNG
// together with its verification token. The token carries the expected
// answer and expiry, encrypted; nothing is stored server side.
func (s *Service) Issue() ([]byte, string, error) {
	first := 10 + rand.Intn(90) // [10, 99]
	second := 1 + rand.Intn(9)  // [1, 9]
	answer := strconv.Itoa(first + second)

	png, err := s.render(fmt.Sprintf("%d + %d = ?", first, second))
	if err != nil {
		return nil, "", fmt.Errorf("failed to render challenge image: %w", err)
	}

	expiresAt := s.now().Add(s.ttl).Unix()
	token, err := s.cipher.Encrypt(answer + payloadSeparator + strconv.FormatInt(expiresAt, 10))
	if err != nil {
		return nil, "", fmt.Errorf("failed to seal challenge token: %w", err)
	}

	return png, token, nil
}

// Verify checks a claimed answer against a token from Issue. Malformed
// tokens, foreign tokens, expired tokens and wrong answers all report
// plain false; callers cannot tell which stage rejected the attempt.
// The claimed answer is trimmed of surrounding whitespace and compared as
// a string, so "050" does not match "50".
func (s *Service) Verify(claimedAnswer, token string) bool {
	payload, err := s.cipher.Decrypt(token)
	if err != nil {
		return false
	}

	expected, expiry, ok := strings.Cut(payload, payloadSeparator)
	if !ok {
		return false
	}

	expiresAt, err := strconv.ParseInt(expiry, 10, 64)
	if err != nil || s.now().Unix() > expiresAt {
		return false
	}

	return strings.TrimSpace(claimedAnswer) == expected
}
