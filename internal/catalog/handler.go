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
	"net/http"
	"net/url"
	"strconv"

	serverconst "github.com/asgardeo/cachengine/internal/system/constants"
	"github.com/asgardeo/cachengine/internal/system/error/serviceerror"
	"github.com/asgardeo/cachengine/internal/system/log"
	"github.com/asgardeo/cachengine/internal/system/utils"
)

const handlerLoggerComponentName = "ProductHandler"

// productHandler is the HTTP handler for product management operations.
type productHandler struct {
	service ProductServiceInterface
}

// newProductHandler creates a new instance of productHandler.
func newProductHandler(service ProductServiceInterface) *productHandler {
	return &productHandler{
		service: service,
	}
}

// HandleProductListRequest handles the list products request.
func (ph *productHandler) HandleProductListRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, handlerLoggerComponentName))

	limit, offset, svcErr := parsePaginationParams(r.URL.Query())
	if svcErr != nil {
		ph.handleError(w, logger, svcErr)
		return
	}
	if limit == 0 {
		limit = serverconst.DefaultPageSize
	}
	filter := ProductFilter{Name: r.URL.Query().Get("name")}

	listResponse, svcErr := ph.service.GetProductList(r.Context(), filter, limit, offset)
	if svcErr != nil {
		ph.handleError(w, logger, svcErr)
		return
	}

	utils.WriteJSONResponse(w, logger, http.StatusOK, listResponse)
	logger.Debug("Successfully listed products", log.Int("limit", limit), log.Int("offset", offset),
		log.Int("totalResults", listResponse.TotalResults), log.Int("count", listResponse.Count))
}

// HandleProductPostRequest handles the create product request.
func (ph *productHandler) HandleProductPostRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, handlerLoggerComponentName))

	createRequest, err := utils.DecodeJSONBody[ProductRequest](r)
	if err != nil {
		utils.WriteJSONError(w, logger, ErrorInvalidRequestFormat.Code, ErrorInvalidRequestFormat.Error,
			"Failed to parse request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	product, svcErr := ph.service.CreateProduct(r.Context(), sanitizeProductRequest(*createRequest))
	if svcErr != nil {
		ph.handleError(w, logger, svcErr)
		return
	}

	utils.WriteJSONResponse(w, logger, http.StatusCreated, product)
}

// HandleProductGetRequest handles the get product by id request.
func (ph *productHandler) HandleProductGetRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, handlerLoggerComponentName))

	product, svcErr := ph.service.GetProduct(r.Context(), r.PathValue("id"))
	if svcErr != nil {
		ph.handleError(w, logger, svcErr)
		return
	}

	utils.WriteJSONResponse(w, logger, http.StatusOK, product)
}

// HandleProductPutRequest handles the update product request.
func (ph *productHandler) HandleProductPutRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, handlerLoggerComponentName))

	updateRequest, err := utils.DecodeJSONBody[ProductRequest](r)
	if err != nil {
		utils.WriteJSONError(w, logger, ErrorInvalidRequestFormat.Code, ErrorInvalidRequestFormat.Error,
			"Failed to parse request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	product, svcErr := ph.service.UpdateProduct(r.Context(), r.PathValue("id"), sanitizeProductRequest(*updateRequest))
	if svcErr != nil {
		ph.handleError(w, logger, svcErr)
		return
	}

	utils.WriteJSONResponse(w, logger, http.StatusOK, product)
}

// HandleProductDeleteRequest handles the delete product request.
func (ph *productHandler) HandleProductDeleteRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, handlerLoggerComponentName))

	id := r.PathValue("id")
	if svcErr := ph.service.DeleteProduct(r.Context(), id); svcErr != nil {
		ph.handleError(w, logger, svcErr)
		return
	}

	w.WriteHeader(http.StatusNoContent)
	logger.Debug("Successfully deleted product", log.String("productID", id))
}

// handleError maps a service error to the HTTP status code and writes the error response.
func (ph *productHandler) handleError(w http.ResponseWriter, logger *log.Logger, svcErr *serviceerror.ServiceError) {
	statusCode := http.StatusInternalServerError
	if svcErr.Type == serviceerror.ClientErrorType {
		switch svcErr.Code {
		case ErrorProductNotFound.Code:
			statusCode = http.StatusNotFound
		case ErrorSKUConflict.Code:
			statusCode = http.StatusConflict
		default:
			statusCode = http.StatusBadRequest
		}
	}

	utils.WriteJSONError(w, logger, svcErr.Code, svcErr.Error, svcErr.ErrorDescription, statusCode)
}

// sanitizeProductRequest sanitizes the free text attributes of a product request.
func sanitizeProductRequest(request ProductRequest) ProductRequest {
	return ProductRequest{
		SKU:         utils.SanitizeString(request.SKU),
		Name:        utils.SanitizeString(request.Name),
		Description: utils.SanitizeString(request.Description),
		Price:       request.Price,
		Stock:       request.Stock,
	}
}

// parsePaginationParams parses limit and offset query parameters from the request.
func parsePaginationParams(query url.Values) (int, int, *serviceerror.ServiceError) {
	limit := 0
	offset := 0

	if limitStr := query.Get("limit"); limitStr != "" {
		parsedLimit, err := strconv.Atoi(limitStr)
		if err != nil {
			return 0, 0, &ErrorInvalidLimit
		}
		limit = parsedLimit
	}

	if offsetStr := query.Get("offset"); offsetStr != "" {
		parsedOffset, err := strconv.Atoi(offsetStr)
		if err != nil {
			return 0, 0, &ErrorInvalidOffset
		}
		offset = parsedOffset
	}

	return limit, offset, nil
}
