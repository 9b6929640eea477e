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

package utils

import "log"

// LogInfo records normal operational events (startup, event feed activity,
// super-admin seeding)
func LogInfo(message string) {
	log.Printf("[INFO] %s\n", message)
}

// LogWarning records recoverable conditions that deserve operator attention
func LogWarning(message string) {
	log.Printf("[WARN] %s\n", message)
}

// LogError records a failure that was handled locally. Best-effort paths such
// as audit recording call this instead of propagating the error; the message
// names the operation, never any secret material.
func LogError(message string, err error) {
	if err != nil {
		log.Printf("[ERROR] %s: %v\n", message, err)
	}
}
