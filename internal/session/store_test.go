package session

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manvinortechnologies/HaloBharat-Customer-sub000/internal/kv"
)

func newTestStore() (*Store, *kv.MemStore) {
	backend := kv.NewMemStore()
	return New(backend, zerolog.Nop()), backend
}

func TestRoundTrip(t *testing.T) {
	store, _ := newTestStore()

	cred := &Credential{
		AccessToken:  "A1",
		RefreshToken: "R1",
		Extra: map[string]json.RawMessage{
			"user_id": json.RawMessage(`42`),
			"name":    json.RawMessage(`"Asha"`),
		},
	}
	_, err := store.Save(cred)
	require.NoError(t, err)

	loaded, err := store.Load()
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, "A1", loaded.AccessToken)
	assert.Equal(t, "R1", loaded.RefreshToken)
	assert.JSONEq(t, `42`, string(loaded.Extra["user_id"]))
	assert.JSONEq(t, `"Asha"`, string(loaded.Extra["name"]))
}

func TestSaveWritesBothKeys(t *testing.T) {
	store, backend := newTestStore()

	_, err := store.Save(&Credential{AccessToken: "A1", RefreshToken: "R1"})
	require.NoError(t, err)

	primary, err := backend.Get(PrimaryKey)
	require.NoError(t, err)
	assert.JSONEq(t, `{"access_token":"A1","refresh_token":"R1"}`, string(primary))

	legacy, err := backend.Get(LegacyKey)
	require.NoError(t, err)
	assert.JSONEq(t, `{"access_token":"A1","refresh_token":"R1","access":"A1","refresh":"R1"}`, string(legacy))
}

func TestLoadFallsBackToLegacyKey(t *testing.T) {
	store, backend := newTestStore()

	// Only the legacy-shaped record exists, under the legacy key.
	require.NoError(t, backend.Set(LegacyKey, []byte(`{"access":"A0","refresh":"R0","plan":"basic"}`)))

	loaded, err := store.Load()
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, "A0", loaded.AccessToken)
	assert.Equal(t, "R0", loaded.RefreshToken)
	assert.JSONEq(t, `"basic"`, string(loaded.Extra["plan"]))
}

func TestLoadPrefersPrimaryKey(t *testing.T) {
	store, backend := newTestStore()

	require.NoError(t, backend.Set(PrimaryKey, []byte(`{"access_token":"primary","refresh_token":"R"}`)))
	require.NoError(t, backend.Set(LegacyKey, []byte(`{"access":"legacy","refresh":"R"}`)))

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "primary", loaded.AccessToken)
}

func TestLoadNothingStored(t *testing.T) {
	store, _ := newTestStore()

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestLoadMalformedRecord(t *testing.T) {
	store, backend := newTestStore()

	require.NoError(t, backend.Set(PrimaryKey, []byte(`not json at all`)))

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestClearIdempotent(t *testing.T) {
	store, _ := newTestStore()

	_, err := store.Save(&Credential{AccessToken: "A", RefreshToken: "R"})
	require.NoError(t, err)

	require.NoError(t, store.Clear())
	require.NoError(t, store.Clear())

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Nil(t, loaded)

	// Clearing a store that never held anything is also fine.
	fresh, _ := newTestStore()
	require.NoError(t, fresh.Clear())
}

func TestCacheAvoidsSecondRead(t *testing.T) {
	store, backend := newTestStore()

	_, err := store.Save(&Credential{AccessToken: "A", RefreshToken: "R"})
	require.NoError(t, err)

	_, err = store.Load()
	require.NoError(t, err)

	// Mutating storage behind the cache is not observed until the cache
	// is dropped: the persisted record is authoritative only across
	// cache resets.
	require.NoError(t, backend.Set(PrimaryKey, []byte(`{"access_token":"B","refresh_token":"R"}`)))

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "A", loaded.AccessToken)

	require.NoError(t, store.Clear())
	loaded, err = store.Load()
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestToken(t *testing.T) {
	store, _ := newTestStore()

	token, err := store.Token()
	require.NoError(t, err)
	assert.Equal(t, "", token)

	_, err = store.Save(&Credential{AccessToken: "A1", RefreshToken: "R1"})
	require.NoError(t, err)

	token, err = store.Token()
	require.NoError(t, err)
	assert.Equal(t, "A1", token)
}

type failingBackend struct{ err error }

func (f failingBackend) Get(string) ([]byte, error) { return nil, f.err }
func (f failingBackend) Set(string, []byte) error   { return f.err }
func (f failingBackend) Delete(string) error        { return f.err }

func TestStorageFailurePropagates(t *testing.T) {
	boom := errors.New("disk on fire")
	store := New(failingBackend{err: boom}, zerolog.Nop())

	_, err := store.Load()
	assert.ErrorIs(t, err, boom)

	_, err = store.Save(&Credential{AccessToken: "A"})
	assert.ErrorIs(t, err, boom)

	assert.ErrorIs(t, store.Clear(), boom)
}

func TestParseCredentialNormalizesFieldNames(t *testing.T) {
	cred, err := ParseCredential([]byte(`{"access":"A","refresh":"R","email":"a@b.in"}`))
	require.NoError(t, err)
	assert.Equal(t, "A", cred.AccessToken)
	assert.Equal(t, "R", cred.RefreshToken)
	assert.JSONEq(t, `"a@b.in"`, string(cred.Extra["email"]))

	// Canonical names win when both are present.
	cred, err = ParseCredential([]byte(`{"access_token":"A1","access":"A0","refresh_token":"R1","refresh":"R0"}`))
	require.NoError(t, err)
	assert.Equal(t, "A1", cred.AccessToken)
	assert.Equal(t, "R1", cred.RefreshToken)
	assert.Empty(t, cred.Extra)
}
