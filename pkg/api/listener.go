/*
 * Copyright 2019-2020 by Nedim Sabic Sabic
 * https://www.fibratus.io
 * All Rights Reserved.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *  http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package api

import (
	"fmt"
	"net"
	"strings"
)

// makeTCPListener produces a new listener for receiving requests over TCP.
// The transport may carry the tcp:// scheme.
func makeTCPListener(transport string) (net.Listener, error) {
	addr := strings.TrimPrefix(transport, "tcp://")
	l, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("fail to listen on %q: %v", addr, err)
	}
	return l, nil
}
