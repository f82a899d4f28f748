package room

// HoldsRoomLock reports whether the service still tracks a per-room lock
// for the given passcode. It exists so external-package tests can verify
// lock teardown without reaching into unexported state.
func HoldsRoomLock(svc Service, passcode string) bool {
	impl := svc.(*service)
	impl.mu.Lock()
	defer impl.mu.Unlock()
	_, held := impl.roomLocks[passcode]
	return held
}
