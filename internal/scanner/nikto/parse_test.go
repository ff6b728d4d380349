package nikto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleReport = `- Nikto v2.5.0
---------------------------------------------------------------------------
+ Target IP:          93.184.216.34
+ Target Hostname:    example.com
+ Target Port:        80
+ Start Time:         2025-08-24 10:00:00 (GMT0)
---------------------------------------------------------------------------
+ Server: ECS (dcb/7F83)
+ /: The anti-clickjacking X-Frame-Options header is not present.
+ /: Server may leak inodes via ETags, header found with file /, inode: 1234.
+ OSVDB-3092: /admin/: This might be interesting.
+ CVE-1999-0524: /icons/: ICMP timestamp requests are allowed.
+ End Time:           2025-08-24 10:05:00 (GMT0) (300 seconds)
---------------------------------------------------------------------------
+ 1 host(s) tested
`

func TestParseFindings(t *testing.T) {
	findings := ParseFindings(sampleReport)
	require.Len(t, findings, 5)

	assert.Equal(t, "Server: ECS (dcb/7F83)", findings[0].Message)
	assert.Empty(t, findings[0].Reference)

	assert.Equal(t, "/", findings[1].Path)
	assert.Contains(t, findings[1].Message, "X-Frame-Options")

	assert.Equal(t, "OSVDB-3092", findings[3].Reference)
	assert.Equal(t, "/admin/", findings[3].Path)
	assert.Equal(t, "OSVDB-3092: /admin/: This might be interesting.", findings[3].Message)

	assert.Equal(t, "CVE-1999-0524", findings[4].Reference)
	assert.Equal(t, "/icons/", findings[4].Path)
}

func TestParseFindings_SkipsMetadata(t *testing.T) {
	findings := ParseFindings(sampleReport)
	for _, f := range findings {
		assert.NotContains(t, f.Message, "Target IP")
		assert.NotContains(t, f.Message, "Start Time")
		assert.NotContains(t, f.Message, "host(s) tested")
	}
}

func TestParseFindings_Empty(t *testing.T) {
	assert.Empty(t, ParseFindings(""))
	assert.Empty(t, ParseFindings("- Nikto v2.5.0\nno markers here\n"))
}
