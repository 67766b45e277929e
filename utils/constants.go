// File: utils/constants.go
package utils

import "time"

// RoomLockPrefix is the prefix used for per-room booking lock keys.
const RoomLockPrefix = "lock:room:"

// RoomLockTTL bounds how long a crashed request can hold a room lock.
const RoomLockTTL = 10 * time.Second

// RoomLockWait is how long CreateBooking waits for a busy room before giving up.
const RoomLockWait = 2 * time.Second

