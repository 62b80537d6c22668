package opengl

// Scene shader pair. The uniform names form the contract with the scene
// core (see render package constants): model/view/projection transforms, a
// flat object color or a sampler selected by bUseTexture, UV tiling, one
// Phong material, one directional light, and four point-light slots.

const vertSrc = `
#version 410 core
layout(location = 0) in vec3 inPosition;
layout(location = 1) in vec3 inNormal;
layout(location = 2) in vec2 inUV;

uniform mat4 model;
uniform mat4 view;
uniform mat4 projection;

out vec3 fragPos;
out vec3 fragNormal;
out vec2 fragUV;

void main() {
    vec4 worldPos = model * vec4(inPosition, 1.0);
    fragPos    = worldPos.xyz;
    fragNormal = mat3(transpose(inverse(model))) * inNormal;
    fragUV     = inUV;
    gl_Position = projection * view * worldPos;
}
` + "\x00"

const fragSrc = `
#version 410 core
in vec3 fragPos;
in vec3 fragNormal;
in vec2 fragUV;

out vec4 outColor;

struct Material {
    vec3  diffuseColor;
    vec3  specularColor;
    float shininess;
};

struct DirectionalLight {
    vec3 direction;
    vec3 ambient;
    vec3 diffuse;
    vec3 specular;
    bool bActive;
};

struct PointLight {
    vec3 position;
    vec3 ambient;
    vec3 diffuse;
    vec3 specular;
    bool bActive;
};

#define TOTAL_POINT_LIGHTS 4

uniform bool bUseTexture;
uniform bool bUseLighting;
uniform vec4 objectColor;
uniform sampler2D objectTexture;
uniform vec2 UVscale;
uniform vec3 viewPosition;

uniform Material material;
uniform DirectionalLight directionalLight;
uniform PointLight pointLights[TOTAL_POINT_LIGHTS];

vec3 calcDirectionalLight(vec3 N, vec3 V, vec3 baseColor) {
    vec3 L = normalize(-directionalLight.direction);
    float diff = max(dot(N, L), 0.0);
    vec3 R = reflect(-L, N);
    float spec = pow(max(dot(V, R), 0.0), max(material.shininess, 1.0));

    vec3 ambient  = directionalLight.ambient * baseColor;
    vec3 diffuse  = directionalLight.diffuse * diff * material.diffuseColor * baseColor;
    vec3 specular = directionalLight.specular * spec * material.specularColor;
    return ambient + diffuse + specular;
}

vec3 calcPointLight(PointLight light, vec3 N, vec3 V, vec3 baseColor) {
    vec3 L = normalize(light.position - fragPos);
    float diff = max(dot(N, L), 0.0);
    vec3 R = reflect(-L, N);
    float spec = pow(max(dot(V, R), 0.0), max(material.shininess, 1.0));

    vec3 ambient  = light.ambient * baseColor;
    vec3 diffuse  = light.diffuse * diff * material.diffuseColor * baseColor;
    vec3 specular = light.specular * spec * material.specularColor;
    return ambient + diffuse + specular;
}

void main() {
    vec4 baseColor = objectColor;
    if (bUseTexture) {
        baseColor = texture(objectTexture, fragUV * UVscale);
    }

    if (!bUseLighting) {
        outColor = baseColor;
        return;
    }

    vec3 N = normalize(fragNormal);
    vec3 V = normalize(viewPosition - fragPos);

    vec3 color = vec3(0.0);
    if (directionalLight.bActive) {
        color += calcDirectionalLight(N, V, baseColor.rgb);
    }
    for (int i = 0; i < TOTAL_POINT_LIGHTS; i++) {
        if (pointLights[i].bActive) {
            color += calcPointLight(pointLights[i], N, V, baseColor.rgb);
        }
    }

    outColor = vec4(color, baseColor.a);
}
` + "\x00"
