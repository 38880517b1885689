package queries_test

import (
	"testing"

	"parceltrack/internal/core/application/usecases/queries"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetParcelQuery(t *testing.T) {
	id := kernel.NewUUID()
	query, err := queries.NewGetParcelQuery(id)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.True(t, query.ParcelID().IsEqual(id))

	_, err = queries.NewGetParcelQuery(kernel.UUID{})
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestQueries_NotConstructedViaConstructor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"get parcel", queries.GetParcelQuery{}.Validate(), queries.ErrGetParcelQueryIsNotConstructed},
		{"track parcel", queries.TrackParcelQuery{}.Validate(), queries.ErrTrackParcelQueryIsNotConstructed},
		{"list parcels", queries.ListParcelsQuery{}.Validate(), queries.ErrListParcelsQueryIsNotConstructed},
		{"rider parcels", queries.ListRiderParcelsQuery{}.Validate(), queries.ErrListRiderParcelsQueryIsNotConstructed},
		{"list payments", queries.ListPaymentsQuery{}.Validate(), queries.ErrListPaymentsQueryIsNotConstructed},
		{"list riders", queries.ListRidersQuery{}.Validate(), queries.ErrListRidersQueryIsNotConstructed},
		{"list users", queries.ListUsersQuery{}.Validate(), queries.ErrListUsersQueryIsNotConstructed},
		{"user role", queries.GetUserRoleQuery{}.Validate(), queries.ErrGetUserRoleQueryIsNotConstructed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Error(t, tt.err)
			assert.ErrorIs(t, tt.err, tt.want)
		})
	}
}

func TestNewTrackParcelQuery(t *testing.T) {
	query, err := queries.NewTrackParcelQuery("  pcl-01j0abcdef  ")
	require.NoError(t, err)
	assert.Equal(t, "PCL-01J0ABCDEF", query.TrackingNumber().String())

	_, err = queries.NewTrackParcelQuery("")
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = queries.NewTrackParcelQuery("not a number!")
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewListParcelsQuery(t *testing.T) {
	query, err := queries.NewListParcelsQuery(" Ann@Example.com ", "paid", "unset")
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, "ann@example.com", query.OwnerEmail())

	query, err = queries.NewListParcelsQuery("", "", "")
	require.NoError(t, err)
	assert.Empty(t, query.OwnerEmail())

	_, err = queries.NewListParcelsQuery("", "lost", "")
	assert.ErrorIs(t, err, errs.ErrStatusIsInvalid)

	_, err = queries.NewListParcelsQuery("", "", "refunded")
	assert.ErrorIs(t, err, errs.ErrStatusIsInvalid)

	_, err = queries.NewListParcelsQuery("not-an-email", "", "")
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewListRiderParcelsQuery(t *testing.T) {
	query, err := queries.NewListRiderParcelsQuery("Rahim@Example.com")
	require.NoError(t, err)
	assert.Equal(t, "rahim@example.com", query.RiderEmail())

	_, err = queries.NewListRiderParcelsQuery("")
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewListPaymentsQuery(t *testing.T) {
	query, err := queries.NewListPaymentsQuery("")
	require.NoError(t, err)
	assert.Empty(t, query.PayerEmail())

	query, err = queries.NewListPaymentsQuery("ANN@example.com")
	require.NoError(t, err)
	assert.Equal(t, "ann@example.com", query.PayerEmail())
}

func TestNewListRidersQuery(t *testing.T) {
	_, err := queries.NewListRidersQuery("active")
	require.NoError(t, err)

	_, err = queries.NewListRidersQuery("")
	require.NoError(t, err)

	_, err = queries.NewListRidersQuery("retired")
	assert.ErrorIs(t, err, errs.ErrStatusIsInvalid)
}

func TestNewListUsersQuery_NormalizesFragment(t *testing.T) {
	query := queries.NewListUsersQuery("  ANN ")
	require.NoError(t, query.Validate())
	assert.Equal(t, "ann", query.EmailFragment())
}

func TestNewGetUserRoleQuery(t *testing.T) {
	query, err := queries.NewGetUserRoleQuery("Admin@Example.com")
	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", query.Email())

	_, err = queries.NewGetUserRoleQuery("")
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}
