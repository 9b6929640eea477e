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
	"math/rand"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"
)

// render draws the prompt onto a noisy PNG. The noise strokes go both
// under and over the text so the digits stay readable but not trivially
// machine-parseable.
func (s *Service) render(prompt string) ([]byte, error) {
	dc := gg.NewContext(s.width, s.height)

	dc.SetRGB(0.96, 0.96, 0.94)
	dc.Clear()

	drawNoise(dc, s.width, s.height, 6)

	dc.SetFontFace(basicfont.Face7x13)
	dc.SetRGB(0.10, 0.12, 0.35)
	dc.Push()
	scale := float64(s.height) / 26.0
	dc.Scale(scale, scale)
	jitterX := (rand.Float64() - 0.5) * 6
	jitterY := (rand.Float64() - 0.5) * 4
	dc.DrawStringAnchored(prompt,
		float64(s.width)/(2*scale)+jitterX,
		float64(s.height)/(2*scale)+jitterY,
		0.5, 0.5)
	dc.Pop()

	drawNoise(dc, s.width, s.height, 4)

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func drawNoise(dc *gg.Context, width, height, strokes int) {
	for i := 0; i < strokes; i++ {
		dc.SetRGBA(rand.Float64(), rand.Float64(), rand.Float64(), 0.35)
		dc.SetLineWidth(1 + rand.Float64()*2)
		dc.DrawLine(
			rand.Float64()*float64(width), rand.Float64()*float64(height),
			rand.Float64()*float64(width), rand.Float64()*float64(height),
		)
		dc.Stroke()
	}
}
