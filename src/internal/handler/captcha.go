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

package handler

import (
	"net/http"

	"itam-api/src/internal/captcha"
	"itam-api/src/internal/utils"

	"github.com/gin-gonic/gin"
)

type CaptchaHandler struct {
	captchaService *captcha.Service
}

func NewCaptchaHandler(captchaService *captcha.Service) *CaptchaHandler {
	return &CaptchaHandler{captchaService: captchaService}
}

// GetCaptcha handles GET /api/v1/captcha. The response body is the
// challenge PNG; the verification token rides in the X-Captcha-Token
// header so the image can be dropped straight into an <img> tag.
func (h *CaptchaHandler) GetCaptcha(c *gin.Context) {
	png, token, err := h.captchaService.Issue()
	if err != nil {
		utils.LogError("Failed to issue captcha challenge", err)
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse("Internal Server Error",
			"Failed to generate challenge"))
		return
	}

	c.Header("X-Captcha-Token", token)
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, "image/png", png)
}

// RegisterRoutes registers captcha endpoints
func (h *CaptchaHandler) RegisterRoutes(r *gin.Engine) {
	r.GET("/api/v1/captcha", h.GetCaptcha)
}
