package passthru

func safeInt64ToUint64(n int64) uint64 {
	if n < 0 {
		return 0
	}
	return uint64(n)
}

func safeInt64ToUint32(n int64) uint32 {
	if n < 0 || n > int64(^uint32(0)) {
		return 0
	}
	return uint32(n)
}
