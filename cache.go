// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"
)

const (
	// Rendered details only change with terminal width, so keep them for the session
	detailCacheExpiration = 30 * time.Minute
	// Clean up expired entries every 5 minutes
	detailCacheCleanup = 5 * time.Minute
)

// NewDetailCache creates a cache for rendered project details
func NewDetailCache() *cache.Cache {
	return cache.New(detailCacheExpiration, detailCacheCleanup)
}

func detailKey(title string, width int) string {
	return fmt.Sprintf("%d:%s", width, title)
}

func CacheDetail(c *cache.Cache, title string, width int, rendered string) {
	c.Set(detailKey(title, width), rendered, detailCacheExpiration)
}

func GetDetail(c *cache.Cache, title string, width int) string {
	val, ok := c.Get(detailKey(title, width))
	if !ok {
		return ""
	}
	return val.(string)
}
