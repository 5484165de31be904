package location

import (
	"testing"
)

// TestNativeConversion tests translation between abstract and native paths.
func TestNativeConversion(t *testing.T) {
	if native := ToNative("/C/Users/"); native != `C:\Users` {
		t.Error("native conversion incorrect:", native)
	}
	if native := ToNative("/C/"); native != `C:\` {
		t.Error("drive root native conversion incorrect:", native)
	}
	if l := FromNative("file", `c:\Users`, true); l.Path != "/C/Users/" {
		t.Error("abstract conversion incorrect:", l)
	}
	if l := FromNative("file", `C:\`, true); l.Path != "/C/" {
		t.Error("drive root abstract conversion incorrect:", l)
	}
}
