package host

import "github.com/tetratelabs/wazero/api"

// linearMemory is the slice of api.Memory the helper needs. Narrowing it
// keeps the helper testable without a live wazero instance.
type linearMemory interface {
	Read(offset, byteCount uint32) ([]byte, bool)
	Write(offset uint32, v []byte) bool
	Size() uint32
}

// Memory provides bounds-checked operations on a solver module's linear
// memory. The module's own entry points hand out raw pointer/length
// pairs; every read and write on the host side goes through here so an
// out-of-range value surfaces as a typed error instead of garbage data.
type Memory struct {
	mem linearMemory
}

// NewMemory creates a memory helper for a module instance.
func NewMemory(module api.Module) *Memory {
	return &Memory{mem: module.Memory()}
}

// ReadBytes reads length bytes at ptr. The returned slice aliases the
// module's memory and is invalidated by the next module call.
func (m *Memory) ReadBytes(ptr, length uint32) ([]byte, error) {
	buf, ok := m.mem.Read(ptr, length)
	if !ok {
		return nil, &MemoryAccessError{Operation: "read", Address: ptr, Length: length}
	}
	return buf, nil
}

// WriteBytes writes data at ptr.
func (m *Memory) WriteBytes(ptr uint32, data []byte) error {
	if !m.mem.Write(ptr, data) {
		return &MemoryAccessError{Operation: "write", Address: ptr, Length: uint32(len(data))}
	}
	return nil
}

// ReadCString reads a null-terminated string at ptr, scanning at most
// maxLen bytes. A missing terminator within the bound is not an error;
// the scan simply stops there, so unterminated module output cannot make
// the host read unbounded memory.
func (m *Memory) ReadCString(ptr, maxLen uint32) (string, error) {
	if avail := m.mem.Size(); ptr < avail && maxLen > avail-ptr {
		maxLen = avail - ptr
	}
	buf, err := m.ReadBytes(ptr, maxLen)
	if err != nil {
		return "", err
	}

	end := len(buf)
	for i, b := range buf {
		if b == 0 {
			end = i
			break
		}
	}
	return string(buf[:end]), nil
}
