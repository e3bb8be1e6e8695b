package pkg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dzjyyds666/siq/parse/sii"
)

const jobsSample = `SiiNunit
{
job_offer_data : job.a {
 target: "posped.berlin"
 cargo: cargo.apples
 urgency: 2
}
job_offer_data : job.b {
 target: "tradeaux.paris"
 cargo: cargo.steel
 urgency: 0
}
}
`

func TestFilter(t *testing.T) {
	doc := sii.Decode(jobsSample)
	ms := sii.FindAll(doc, "job_offer_data")
	require.Len(t, ms, 2)

	cases := []struct {
		src  string
		want []string
	}{
		{`urgency > 1`, []string{"job.a"}},
		{`cargo == "cargo.steel"`, []string{"job.b"}},
		{`target contains "paris"`, []string{"job.b"}},
		{`__name startsWith "job."`, []string{"job.a", "job.b"}},
		{`__type == "company"`, nil},
		{`__path == "/job.a"`, []string{"job.a"}},
	}
	for _, c := range cases {
		t.Run(c.src, func(t *testing.T) {
			f, err := CompileFilter(c.src)
			require.NoError(t, err)
			assert.Equal(t, c.src, f.String())
			got, err := Select(ms, f)
			require.NoError(t, err)
			var names []string
			for _, m := range got {
				names = append(names, m.Key)
			}
			assert.Equal(t, c.want, names)
		})
	}
}

func TestFilterErrors(t *testing.T) {
	_, err := CompileFilter(`urgency >`)
	assert.Error(t, err)

	_, err = CompileFilter(`"not a bool"`)
	assert.Error(t, err)

	ms := sii.FindAll(sii.Decode(jobsSample), "job_offer_data")
	all, err := Select(ms, nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
