package piconero_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsMultisig(t *testing.T) {
	ws := newWalletServer(t, `{"multisig": true, "ready": true, "threshold": 2, "total": 3}`)

	r, err := ws.client(t).IsMultisig()
	require.NoError(t, err)
	assert.True(t, r.Multisig)
	assert.Equal(t, uint32(2), r.Threshold)
	assert.Equal(t, uint32(3), r.Total)
}

func TestPrepareMultisig(t *testing.T) {
	ws := newWalletServer(t, `{"multisig_info": "MultisigV1BFdxQ653cQHB8wsj9WJQd2VdnjxK89g5M94dKPBNw22reJnyJYKrz6rJeXdjFwJ3Mz6n4qNQLd6eqUZKLiNzJFi"}`)

	info, err := ws.client(t).PrepareMultisig()
	require.NoError(t, err)
	assert.Equal(t, "prepare_multisig", ws.method)
	assert.Nil(t, ws.params)
	assert.Contains(t, info, "MultisigV1")
}

func TestMakeMultisig(t *testing.T) {
	ws := newWalletServer(t, `{"address": "55SoZTKH7D39drxfgT62k8T4adVFjmDLUXnbzEKYf1MoYwnmTNKKaqGfxm4sqeKCHXQ5up7PVxrkoeRzXu83d8xYURouMod", "multisig_info": ""}`)

	r, err := ws.client(t).MakeMultisig([]string{"MultisigV1K4tGGe8QirZdHgTYoBZMumSug97fdDyM3Z63M3ZY5VXvAdoZvx16HJzPCP4Rp2ABMKUqLD2a74ugMdBfrVpKt4BwD8qCL5aZLrsYWoHiA7JJwDESuhsC3eF8QC9UMvxLXEMsMVh16o98GnKRYz1HCKXrAEWfcrCHyz3bLW1Pdggyowop"}, 2, "pw")
	require.NoError(t, err)
	assert.Equal(t, "make_multisig", ws.method)
	assert.NotEmpty(t, r.Address)
}

func TestImportMultisigInfo(t *testing.T) {
	ws := newWalletServer(t, `{"n_outputs": 35}`)

	n, err := ws.client(t).ImportMultisigInfo([]string{"blob1", "blob2"})
	require.NoError(t, err)
	assert.Equal(t, uint64(35), n)
	assert.JSONEq(t, `{"info": ["blob1", "blob2"]}`, string(ws.params))
}
