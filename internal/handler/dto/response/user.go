package response

import "invoice-admin/internal/usecase/queries"

type UserListResponse struct {
	Users []queries.UserView `json:"users"`
}
