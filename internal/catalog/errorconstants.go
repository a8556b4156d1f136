/*
 * Copyright (c) 2025, WSO2 LLC. (https://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

package catalog

import (
	"errors"

	"github.com/asgardeo/cachengine/internal/system/error/serviceerror"
)

// Client errors for product management operations.
var (
	// ErrorInvalidRequestFormat is the error returned when the request format is invalid.
	ErrorInvalidRequestFormat = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "CAT-1001",
		Error:            "Invalid request format",
		ErrorDescription: "The request body is malformed, contains invalid data, or required fields are missing/empty",
	}
	// ErrorMissingProductID is the error returned when the product id is missing.
	ErrorMissingProductID = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "CAT-1002",
		Error:            "Invalid request format",
		ErrorDescription: "Product ID is required",
	}
	// ErrorProductNotFound is the error returned when a product is not found.
	ErrorProductNotFound = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "CAT-1003",
		Error:            "Product not found",
		ErrorDescription: "The product with the specified id does not exist",
	}
	// ErrorSKUConflict is the error returned when another product already uses the SKU.
	ErrorSKUConflict = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "CAT-1004",
		Error:            "SKU conflict",
		ErrorDescription: "A product with the same SKU already exists",
	}
	// ErrorInvalidLimit is the error returned when the limit parameter is invalid.
	ErrorInvalidLimit = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "CAT-1005",
		Error:            "Invalid pagination parameter",
		ErrorDescription: "The limit parameter must be a positive integer",
	}
	// ErrorInvalidOffset is the error returned when the offset parameter is invalid.
	ErrorInvalidOffset = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "CAT-1006",
		Error:            "Invalid pagination parameter",
		ErrorDescription: "The offset parameter must be a non-negative integer",
	}
	// ErrorInvalidPrice is the error returned when the price or stock is negative.
	ErrorInvalidPrice = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "CAT-1007",
		Error:            "Invalid product",
		ErrorDescription: "Price and stock must not be negative",
	}
)

// Server errors for product management operations.
var (
	// ErrorInternalServerError is the error returned when an internal server error occurs.
	ErrorInternalServerError = serviceerror.ServiceError{
		Type:             serviceerror.ServerErrorType,
		Code:             "CAT-5000",
		Error:            "Internal server error",
		ErrorDescription: "An unexpected error occurred while processing the request",
	}
)

// errProductNotFound is returned by the store when no product matches the id.
var errProductNotFound = errors.New("product not found")
